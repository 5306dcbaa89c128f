package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mindful-labs/mood-tracker/internal/api/recovery"
	"github.com/mindful-labs/mood-tracker/internal/api/requestid"
)

// NewRouter wires the HTTP surface: JSON API under /api and the embedded
// web UI at the root. ui may be nil when the service runs headless.
func NewRouter(entries *EntryHandler, healthHandler *HealthHandler, ui http.Handler) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)
	router.Use(requestid.Middleware)

	router.HandleFunc("/api/health", healthHandler.Check).Methods("GET")

	router.HandleFunc("/api/entries", entries.CreateEntry).Methods("POST")
	router.HandleFunc("/api/entries", entries.ListEntries).Methods("GET")
	router.HandleFunc("/api/entries/{date}", entries.GetEntry).Methods("GET")
	router.HandleFunc("/api/entries/{date}/average", entries.TrailingAverage).Methods("GET")

	router.HandleFunc("/api/summary", entries.GetSummary).Methods("GET")
	router.HandleFunc("/api/trend", entries.GetTrend).Methods("GET")
	router.HandleFunc("/api/calendar/{year:[0-9]{4}}/{month:[0-9]{1,2}}", entries.GetCalendar).Methods("GET")

	if ui != nil {
		router.PathPrefix("/").Handler(ui).Methods("GET")
	}

	return router
}
