package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// UnmatchedRoute labels requests that did not resolve to a registered route,
// so arbitrary 404 paths cannot blow up metric cardinality.
const UnmatchedRoute = "unmatched"

// ObserveFunc receives one observation per completed request.
type ObserveFunc func(method, route string, status int, latency time.Duration)

// Metrics reports every request to observe, labelled with the chi route
// pattern rather than the raw path.
func Metrics(observe ObserveFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			observe(r.Method, routePattern(r), rec.status, time.Since(start))
		})
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return UnmatchedRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return UnmatchedRoute
}
