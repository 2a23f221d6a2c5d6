// Package handlers provides HTTP handlers for the dashboard read API.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/aftab0khan021/mgnrega/internal/modules/dashboard"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Not-found details returned to clients
const (
	detailNoDistricts   = "No districts found for this state"
	detailNoPerformance = "No performance data found"
	detailNoState       = "State not found"
	detailBadLimit      = "limit must be an integer"
	detailInternal      = "Internal server error"
)

// Handler handles dashboard HTTP requests
type Handler struct {
	service *dashboard.Service
	log     zerolog.Logger
}

// NewHandler creates a new dashboard handler
func NewHandler(service *dashboard.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "dashboard").Logger(),
	}
}

// HandleListStates handles GET /api/states
func (h *Handler) HandleListStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.service.ListStates(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list states")
		h.writeError(w, http.StatusInternalServerError, detailInternal)
		return
	}
	if states == nil {
		states = []domain.State{}
	}

	h.writeJSON(w, http.StatusOK, states)
}

// HandleGetState handles GET /api/states/{stateCode}
func (h *Handler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "stateCode")

	state, err := h.service.GetState(r.Context(), code)
	if err != nil {
		h.handleQueryError(w, err, detailNoState, "Failed to get state", code)
		return
	}

	h.writeJSON(w, http.StatusOK, state)
}

// HandleListDistricts handles GET /api/districts/{stateCode}
func (h *Handler) HandleListDistricts(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "stateCode")

	districts, err := h.service.ListDistricts(r.Context(), code)
	if err != nil {
		h.handleQueryError(w, err, detailNoDistricts, "Failed to list districts", code)
		return
	}

	h.writeJSON(w, http.StatusOK, districts)
}

// HandleListPerformance handles GET /api/performance/{districtCode}?limit=N
func (h *Handler) HandleListPerformance(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "districtCode")

	limit, ok := h.parseLimit(w, r)
	if !ok {
		return
	}

	records, err := h.service.ListPerformance(r.Context(), code, limit)
	if err != nil {
		h.handleQueryError(w, err, detailNoPerformance, "Failed to list performance", code)
		return
	}

	h.writeJSON(w, http.StatusOK, records)
}

// HandlePerformanceSummary handles GET /api/performance/{districtCode}/summary?limit=N
func (h *Handler) HandlePerformanceSummary(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "districtCode")

	limit, ok := h.parseLimit(w, r)
	if !ok {
		return
	}

	summary, err := h.service.PerformanceSummary(r.Context(), code, limit)
	if err != nil {
		h.handleQueryError(w, err, detailNoPerformance, "Failed to summarize performance", code)
		return
	}

	h.writeJSON(w, http.StatusOK, summary)
}

// HandleListTranslations handles GET /api/translations
func (h *Handler) HandleListTranslations(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.TranslationEntries())
}

// HandleGetTranslations handles GET /api/translations/{language}
func (h *Handler) HandleGetTranslations(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.TranslationsFor(chi.URLParam(r, "language")))
}

// HandleListLanguages handles GET /api/languages
func (h *Handler) HandleListLanguages(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Languages())
}

// parseLimit reads the optional limit query parameter.
// Missing means DefaultLimit; a non-integer writes a 400 and returns false.
func (h *Handler) parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return dashboard.DefaultLimit, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, detailBadLimit)
		return 0, false
	}
	return limit, true
}

func (h *Handler) handleQueryError(w http.ResponseWriter, err error, notFoundDetail, msg, code string) {
	if domain.IsNotFound(err) {
		h.writeError(w, http.StatusNotFound, notFoundDetail)
		return
	}
	h.log.Error().Err(err).Str("code", code).Msg(msg)
	h.writeError(w, http.StatusInternalServerError, detailInternal)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, detail string) {
	h.writeJSON(w, status, map[string]string{"detail": detail})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
