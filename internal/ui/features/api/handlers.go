// Package api serves the JSON endpoints of the keeper analysis
// service. Every response carries a status field; failures use the
// uniform {error, status:"error"} body.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gridironlabs/keeper/internal/league"
)

// Handlers provides the JSON API handlers.
type Handlers struct {
	source   *league.Source
	logger   *slog.Logger
	instance string
}

// NewHandlers creates a Handlers instance. The instance id identifies
// this server start in health responses.
func NewHandlers(source *league.Source, logger *slog.Logger, instance string) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{source: source, logger: logger, instance: instance}
}

type playersResponse struct {
	Players    []league.KeeperRecord `json:"players"`
	TotalCount int                   `json:"total_count"`
	Status     string                `json:"status"`
}

type managersResponse struct {
	Managers []string `json:"managers"`
	Status   string   `json:"status"`
}

type recommendationsResponse struct {
	Manager         string                  `json:"manager"`
	Recommendations []league.Recommendation `json:"recommendations"`
	Message         string                  `json:"message,omitempty"`
	Status          string                  `json:"status"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Instance string `json:"instance"`
}

// Players returns every keeper analysis record.
func (h *Handlers) Players(w http.ResponseWriter, r *http.Request) {
	records, err := h.source.Analysis()
	if err != nil {
		h.writeSourceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, playersResponse{
		Players:    records,
		TotalCount: len(records),
		Status:     "success",
	})
}

// Managers returns the distinct manager names in the analysis.
func (h *Handlers) Managers(w http.ResponseWriter, r *http.Request) {
	records, err := h.source.Analysis()
	if err != nil {
		h.writeSourceError(w, err)
		return
	}

	managers := league.Managers(records)
	if managers == nil {
		managers = []string{}
	}

	WriteJSON(w, http.StatusOK, managersResponse{
		Managers: managers,
		Status:   "success",
	})
}

// Recommendations returns the top keeper candidates for one manager.
// A manager with no eligible keepers gets an empty list with success
// status; that is a result, not an error.
func (h *Handlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	manager := chi.URLParam(r, "manager")

	records, err := h.source.Analysis()
	if err != nil {
		h.writeSourceError(w, err)
		return
	}

	recs := league.Recommend(records, manager)
	resp := recommendationsResponse{
		Manager:         manager,
		Recommendations: recs,
		Status:          "success",
	}
	if resp.Recommendations == nil {
		resp.Recommendations = []league.Recommendation{}
		resp.Message = "No eligible keepers found for this manager"
	}

	WriteJSON(w, http.StatusOK, resp)
}

// Health reports liveness and the server instance id.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, healthResponse{
		Status:   "success",
		Instance: h.instance,
	})
}

func (h *Handlers) writeSourceError(w http.ResponseWriter, err error) {
	if errors.Is(err, league.ErrSourceUnavailable) {
		h.logger.Error("analysis sources unavailable", "error", err)
		WriteError(w, http.StatusNotFound, "No data available")
		return
	}
	h.logger.Error("analysis failed", "error", err)
	WriteError(w, http.StatusInternalServerError, "Internal server error")
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the uniform JSON error body.
func WriteError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, map[string]string{
		"error":  message,
		"status": "error",
	})
}
