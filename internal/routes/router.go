package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"devops-info/service/internal/api"
	"devops-info/service/internal/config"
	"devops-info/service/internal/constants"
	"devops-info/service/internal/logging"
	"devops-info/service/internal/middleware"
)

// RegisterRoutes builds the HTTP handler for the service.
func RegisterRoutes(cfg config.Config, info api.InfoProvider) http.Handler {
	r := chi.NewRouter()

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(chimw.Recoverer)
	r.Use(limiter.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(api.NotFoundHandler)
	r.MethodNotAllowed(api.MethodNotAllowedHandler)

	r.Get(constants.RootPath, api.RootHandler(info))
	r.Get(constants.HealthPath, api.HealthCheckHandler(info))

	logging.Info("Router initialized",
		"rate_limit_rps", cfg.RateLimitRPS,
		"cors_origins", cfg.CORSAllowedOrigins,
	)

	return r
}
