package api

import (
	"net/http"

	"devops-info/service/internal/logging"
)

// HealthCheckHandler handles GET /health
//
// @Summary Health check
// @Description Liveness probe with the current uptime.
// @Tags Misc
// @Success 200 {object} dtos.HealthResponse
// @Router /health [get]
func HealthCheckHandler(svc InfoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logging.Debug("Health check request")

		respondWithJSON(w, http.StatusOK, svc.Health())
	}
}
