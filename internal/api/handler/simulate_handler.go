package handler

import (
	"net/http"
	"time"

	"github.com/ricirt/infra-simulation-api/internal/domain"
)

// SimulateHandler serves endpoints that shape latency on purpose, giving
// load tests and tracing pipelines something measurable to look at.
type SimulateHandler struct {
	delay time.Duration
}

func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{delay: domain.SlowDelay}
}

// Slow handles GET /simulate/slow
//
// Waits on a per-request timer, so in-flight slow requests never hold up
// other routes. Returns without a body if the client disconnects first.
//
// @Summary  Respond after a fixed 400ms delay
// @Tags     simulate
// @Produce  json
// @Success  200  {object}  domain.SlowResult
// @Router   /simulate/slow [get]
func (h *SimulateHandler) Slow(w http.ResponseWriter, r *http.Request) {
	timer := time.NewTimer(h.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-r.Context().Done():
		return
	}

	respondJSON(w, http.StatusOK, domain.SlowResult{OK: true, DelayMS: h.delay.Milliseconds()})
}
