package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all dashboard routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	// Reference data
	r.Get("/states", h.HandleListStates)
	r.Get("/states/{stateCode}", h.HandleGetState)
	r.Get("/districts/{stateCode}", h.HandleListDistricts)

	// Performance
	r.Get("/performance/{districtCode}", h.HandleListPerformance)
	r.Get("/performance/{districtCode}/summary", h.HandlePerformanceSummary)

	// UI strings
	r.Get("/translations", h.HandleListTranslations)
	r.Get("/translations/{language}", h.HandleGetTranslations)
	r.Get("/languages", h.HandleListLanguages)
}
