// Package analysis serves the keeper analysis HTML page and its live
// update stream.
package analysis

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/gridironlabs/keeper/internal/league"
	"github.com/gridironlabs/keeper/internal/ui/notifier"
	"github.com/gridironlabs/keeper/internal/ui/views"
	"github.com/starfederation/datastar-go/datastar"
)

const (
	sessionName       = "keeper"
	sessionManagerKey = "manager"
)

// Handlers provides the HTML page handlers.
type Handlers struct {
	source       *league.Source
	sessionStore sessions.Store
	notifier     *notifier.Notifier
	logger       *slog.Logger
}

// NewHandlers creates a Handlers instance.
func NewHandlers(source *league.Source, sessionStore sessions.Store, notify *notifier.Notifier, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		source:       source,
		sessionStore: sessionStore,
		notifier:     notify,
		logger:       logger,
	}
}

// Home redirects the root path to the analysis page.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/keeper-analysis", http.StatusFound)
}

// AnalysisPage renders the keeper analysis table. The manager filter
// comes from the query string and sticks in the session across visits.
func (h *Handlers) AnalysisPage(w http.ResponseWriter, r *http.Request) {
	records, err := h.source.Analysis()
	if err != nil {
		h.logger.Error("failed to build analysis", "error", err)
		w.WriteHeader(http.StatusNotFound)
		_ = views.RenderError(w, "Unable to load keeper analysis data. Please check that the data files exist.")
		return
	}

	selected := h.selectedManager(w, r)

	if err := views.RenderAnalysis(w, views.AnalysisData{
		Players:  records,
		Managers: league.Managers(records),
		Selected: selected,
	}); err != nil {
		h.logger.Error("failed to render analysis page", "error", err)
	}
}

// Updates is the long-lived SSE endpoint. When the source files change
// on disk, connected pages are told to reload.
func (h *Handlers) Updates(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := sse.ExecuteScript("window.location.reload()"); err != nil {
				return
			}
		}
	}
}

// selectedManager resolves the manager filter: an explicit query
// parameter wins and is saved to the session; otherwise the session
// value is used.
func (h *Handlers) selectedManager(w http.ResponseWriter, r *http.Request) string {
	session, err := h.sessionStore.Get(r, sessionName)
	if err != nil {
		// A stale or tampered cookie just means no sticky filter.
		session, _ = h.sessionStore.New(r, sessionName)
	}

	if r.URL.Query().Has("manager") {
		manager := r.URL.Query().Get("manager")
		session.Values[sessionManagerKey] = manager
		if err := session.Save(r, w); err != nil {
			h.logger.Debug("failed to save session", "error", err)
		}
		return manager
	}

	if manager, ok := session.Values[sessionManagerKey].(string); ok {
		return manager
	}
	return ""
}
