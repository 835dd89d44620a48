// Package router wires the web server's routes and its uniform error
// handling.
package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/gridironlabs/keeper/internal/league"
	analysisFeature "github.com/gridironlabs/keeper/internal/ui/features/analysis"
	apiFeature "github.com/gridironlabs/keeper/internal/ui/features/api"
	"github.com/gridironlabs/keeper/internal/ui/notifier"
	"github.com/gridironlabs/keeper/internal/ui/resources"
	"github.com/gridironlabs/keeper/internal/ui/views"
)

// SetupRoutes configures all routes for the web server.
func SetupRoutes(
	router chi.Router,
	source *league.Source,
	sessionStore *sessions.CookieStore,
	notify *notifier.Notifier,
	logger *slog.Logger,
	instance string,
) {
	// Static assets
	router.Handle("/static/*", resources.Handler())

	// Feature routes
	analysisFeature.SetupRoutes(router, source, sessionStore, notify, logger)
	apiFeature.SetupRoutes(router, source, logger, instance)

	// Unmatched page routes get the HTML error view. API misses are
	// handled inside the /api subrouter with the JSON body.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if isAPIPath(r) {
			apiFeature.WriteError(w, http.StatusNotFound, "Not found")
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_ = views.RenderError(w, "Page not found")
	})
}

// Recoverer converts panics into the uniform error responses: JSON
// under /api, the HTML error page elsewhere. Nothing propagates to the
// client as an unhandled fault.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler { //nolint:errorlint
						panic(rec)
					}
					logger.Error("panic serving request",
						"path", r.URL.Path,
						"panic", rec)

					if isAPIPath(r) {
						apiFeature.WriteError(w, http.StatusInternalServerError, "Internal server error")
						return
					}
					w.WriteHeader(http.StatusInternalServerError)
					_ = views.RenderError(w, "An unexpected error occurred")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func isAPIPath(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api"
}
