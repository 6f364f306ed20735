package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ricirt/infra-simulation-api/internal/api/handler"
	apimw "github.com/ricirt/infra-simulation-api/internal/api/middleware"
	"github.com/ricirt/infra-simulation-api/internal/buildinfo"
	"github.com/ricirt/infra-simulation-api/internal/metrics"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
//
// Unknown paths and unsupported methods fall through to chi's default
// 404 and 405 responses.
func NewRouter(
	env buildinfo.Environment,
	m *metrics.Metrics,
	reg prometheus.Gatherer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)            // recover panics, return 500
	r.Use(chimw.RealIP)               // trust X-Forwarded-For / X-Real-IP
	r.Use(chimw.RequestSize(1 << 20)) // 1 MB max request body
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger))
	r.Use(apimw.Metrics(m.RequestHook()))

	// --- handler instances ---
	hh := handler.NewHealthHandler()
	vh := handler.NewVersionHandler(env)
	sh := handler.NewSimulateHandler()

	// --- routes ---
	r.Get("/", hh.Root)
	r.Get("/healthz", hh.Healthz)
	r.Get("/livez", hh.Livez)
	r.Get("/readyz", hh.Readyz)
	r.Get("/version", vh.Version)

	r.Route("/simulate", func(r chi.Router) {
		r.Get("/slow", sh.Slow)
	})

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}
