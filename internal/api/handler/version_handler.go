package handler

import (
	"net/http"

	"github.com/ricirt/infra-simulation-api/internal/buildinfo"
)

// VersionHandler reports the running version and commit.
type VersionHandler struct {
	env buildinfo.Environment
}

func NewVersionHandler(env buildinfo.Environment) *VersionHandler {
	return &VersionHandler{env: env}
}

// Version handles GET /version
//
// Values are re-read from the environment on every request.
//
// @Summary  Build version
// @Tags     system
// @Produce  json
// @Success  200  {object}  buildinfo.VersionInfo
// @Router   /version [get]
func (h *VersionHandler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, buildinfo.Read(h.env))
}
