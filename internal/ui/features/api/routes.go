package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gridironlabs/keeper/internal/league"
)

// SetupRoutes mounts the JSON API under /api.
func SetupRoutes(router chi.Router, source *league.Source, logger *slog.Logger, instance string) {
	handlers := NewHandlers(source, logger, instance)

	router.Route("/api", func(r chi.Router) {
		r.Get("/players", handlers.Players)
		r.Get("/managers", handlers.Managers)
		r.Get("/keeper-recommendations/{manager}", handlers.Recommendations)
		r.Get("/health", handlers.Health)

		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			WriteError(w, http.StatusNotFound, "Not found")
		})
	})
}
