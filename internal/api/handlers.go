// Package api provides HTTP API handlers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/puzzlewire/wordled/internal/database"
	"github.com/puzzlewire/wordled/internal/models"
	"github.com/puzzlewire/wordled/internal/puzzle"
	"github.com/puzzlewire/wordled/internal/resolve"
)

// Resolver is the part of the pipeline the handlers depend on.
type Resolver interface {
	Resolve(ctx context.Context, date time.Time) (*models.PuzzleRecord, error)
}

// Handler contains all HTTP handlers.
type Handler struct {
	resolver Resolver
	store    database.Store
}

// NewHandler creates a new handler.
func NewHandler(resolver Resolver, store database.Store) *Handler {
	return &Handler{
		resolver: resolver,
		store:    store,
	}
}

// HealthCheck returns the service health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ResolvePuzzle triggers the resolution pipeline for the requested date.
// The date parameter is optional: absent or "today" means the current UTC
// day. Serves both the scheduled and the manual trigger.
func (h *Handler) ResolvePuzzle(w http.ResponseWriter, r *http.Request) {
	param := r.URL.Query().Get("date")

	var date time.Time
	if param == "" || param == "today" {
		date = time.Now().UTC()
	} else {
		var err error
		date, err = puzzle.ParseDate(param)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD or 'today'")
			return
		}
	}

	record, err := h.resolver.Resolve(r.Context(), date)
	switch {
	case errors.Is(err, resolve.ErrExhausted):
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{
			Error: "No source produced a valid answer for " + puzzle.FormatDate(date),
			Code:  "resolution_exhausted",
		})
		return
	case errors.Is(err, resolve.ErrPersistence):
		log.Error().Err(err).Msg("Resolved answer could not be saved")
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error: "Answer resolved but could not be saved",
			Code:  "persistence_failure",
		})
		return
	case err != nil:
		log.Error().Err(err).Msg("Resolution failed")
		writeError(w, http.StatusInternalServerError, "Resolution failed")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// GetPuzzle returns the persisted record for a date.
func (h *Handler) GetPuzzle(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := puzzle.ParseDate(date); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
		return
	}

	record, err := h.store.GetPuzzleByDate(r.Context(), date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("Failed to get puzzle")
		writeError(w, http.StatusInternalServerError, "Failed to get puzzle")
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "No puzzle for "+date)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// ListPuzzles returns the most recent records, newest first.
func (h *Handler) ListPuzzles(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	records, err := h.store.ListRecentPuzzles(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list puzzles")
		writeError(w, http.StatusInternalServerError, "Failed to list puzzles")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"puzzles": records,
		"limit":   limit,
	})
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}
