// Package api provides HTTP router setup.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/puzzlewire/wordled/internal/config"
)

// NewRouter creates a new HTTP router with all routes configured. The
// read endpoints are public; the resolve trigger requires the shared
// secret. GET and POST both trigger so external cron services and manual
// callers share one handler.
func NewRouter(cfg *config.Config, handler *Handler) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)

		// Public read side
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(cfg.Server.RequestsPerMinute, time.Minute))
			r.Get("/puzzles", handler.ListPuzzles)
			r.Get("/puzzles/{date}", handler.GetPuzzle)
		})

		// Trigger surface
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(cfg.Auth.Token))
			r.Use(httprate.LimitByIP(cfg.Server.RequestsPerMinute, time.Minute))
			r.Get("/resolve", handler.ResolvePuzzle)
			r.Post("/resolve", handler.ResolvePuzzle)
		})
	})

	return r
}
