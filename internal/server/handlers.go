package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// APIVersion is reported by the root endpoint
const APIVersion = "1.0"

// handleRoot handles GET /api/
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "MGNREGA District Performance API",
		"version": APIVersion,
	})
}

// handleHealth handles health check requests.
// Reports 503 when the store does not answer a ping.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.container.ReferenceStore.Ping(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Health check failed")
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "unhealthy",
			"backend": s.container.Backend,
			"detail":  "storage unavailable",
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"version": APIVersion,
		"service": "mgnrega",
		"backend": s.container.Backend,
	})
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
