package api

import (
	"net/http"

	"github.com/mindful-labs/mood-tracker/internal/api/respond"
	"github.com/mindful-labs/mood-tracker/internal/health"
)

type HealthHandler struct {
	checker *health.StoreChecker
}

func NewHealthHandler(checker *health.StoreChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Check GET /api/health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.checker.IsHealthy() {
		respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "UP"})
		return
	}
	respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "DOWN"})
}
