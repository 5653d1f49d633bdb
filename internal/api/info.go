package api

import (
	"context"
	"net/http"

	"devops-info/service/internal/logging"
	"devops-info/service/internal/middleware"
	"devops-info/service/internal/models/dtos"
)

// InfoProvider builds the payloads served by this package.
type InfoProvider interface {
	Root(ctx context.Context, req dtos.RequestInfo) dtos.RootResponse
	Health() dtos.HealthResponse
}

// RootHandler handles GET /
//
// @Summary Service info
// @Description System and service info about the server.
// @Tags Misc
// @Success 200 {object} dtos.RootResponse
// @Router / [get]
func RootHandler(svc InfoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logging.Debug("Request", "method", r.Method, "path", r.URL.Path)

		req := dtos.RequestInfo{
			ClientIP:  middleware.ClientIP(r),
			UserAgent: r.Header.Get("User-Agent"),
			Method:    r.Method,
			Path:      r.URL.Path,
		}

		respondWithJSON(w, http.StatusOK, svc.Root(r.Context(), req))
	}
}
