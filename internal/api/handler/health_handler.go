package handler

import (
	"net/http"

	"github.com/ricirt/infra-simulation-api/internal/domain"
)

// HealthHandler serves the service status and probe endpoints.
// Every response is a constant; nothing is checked.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Root handles GET /
//
// @Summary  Service status
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.ServiceStatus
// @Router   / [get]
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.ServiceStatus{Service: domain.ServiceName, Status: "ok"})
}

// Healthz handles GET /healthz
//
// @Summary  Health probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.Health
// @Router   /healthz [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.Health{OK: true})
}

// Livez handles GET /livez
//
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.Liveness
// @Router   /livez [get]
func (h *HealthHandler) Livez(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.Liveness{Alive: true})
}

// Readyz handles GET /readyz
//
// Always ready: the service has no dependencies to check.
//
// @Summary  Readiness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.Readiness
// @Router   /readyz [get]
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.Readiness{Ready: true})
}
