package analysis

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/gridironlabs/keeper/internal/league"
	"github.com/gridironlabs/keeper/internal/ui/notifier"
)

// SetupRoutes configures the page routes.
func SetupRoutes(router chi.Router, source *league.Source, sessionStore sessions.Store, notify *notifier.Notifier, logger *slog.Logger) {
	handlers := NewHandlers(source, sessionStore, notify, logger)

	router.Get("/", handlers.Home)
	router.Get("/keeper-analysis", handlers.AnalysisPage)
	router.Get("/updates", handlers.Updates)
}
