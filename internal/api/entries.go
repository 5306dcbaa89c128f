package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/gorilla/mux"

	"github.com/mindful-labs/mood-tracker/internal/api/respond"
	"github.com/mindful-labs/mood-tracker/internal/calendar"
	"github.com/mindful-labs/mood-tracker/internal/model"
	"github.com/mindful-labs/mood-tracker/internal/mood"
	"github.com/mindful-labs/mood-tracker/internal/services"
)

// DefaultWindowDays is the trailing-average window used when the caller does
// not supply one; it matches the weekly average of the analytics page.
const DefaultWindowDays = 7

type EntryHandler struct {
	svc *services.EntryService
}

func NewEntryHandler(svc *services.EntryService) *EntryHandler {
	return &EntryHandler{svc: svc}
}

type createEntryRequest struct {
	Date        strfmt.Date `json:"date"`
	Mood        *int        `json:"mood"`
	SleepHours  *float64    `json:"sleepHours"`
	Exercise    *string     `json:"exercise"`
	DietQuality *string     `json:"dietQuality"`
	Journal     string      `json:"journal"`
}

// validate checks required fields only. Mood range is deliberately not
// checked: the store persists whatever the caller supplies.
func (req *createEntryRequest) validate() error {
	if time.Time(req.Date).IsZero() {
		return fmt.Errorf("%w: date is required", model.ErrValidation)
	}
	if req.Mood == nil {
		return fmt.Errorf("%w: mood is required", model.ErrValidation)
	}
	return nil
}

// CreateEntry POST /api/entries
// Inserts or fully replaces the record for the date in the body.
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := req.validate(); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	entry := &model.MoodEntry{
		Date:        req.Date,
		Mood:        *req.Mood,
		SleepHours:  req.SleepHours,
		Exercise:    req.Exercise,
		DietQuality: req.DietQuality,
		Journal:     req.Journal,
	}
	out, err := h.svc.Upsert(r.Context(), entry)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"entry":      out,
		"suggestion": mood.Suggestion(out.Mood),
	})
}

// GetEntry GET /api/entries/{date}
func (h *EntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDateVar(w, r)
	if !ok {
		return
	}
	out, err := h.svc.Get(r.Context(), day)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "no entry for this date")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// ListEntries GET /api/entries
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	if out == nil {
		out = []*model.MoodEntry{}
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"entries": out, "count": len(out)})
}

// TrailingAverage GET /api/entries/{date}/average?window=7
// The average field is omitted when the window holds no entries.
func (h *EntryHandler) TrailingAverage(w http.ResponseWriter, r *http.Request) {
	day, ok := parseDateVar(w, r)
	if !ok {
		return
	}

	window := DefaultWindowDays
	if v := r.URL.Query().Get("window"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respond.WriteBadRequest(w, "window must be a positive integer")
			return
		}
		window = n
	}

	avg, err := h.svc.TrailingAverage(r.Context(), day, window)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	resp := struct {
		EndDate    string   `json:"endDate"`
		WindowDays int      `json:"windowDays"`
		Average    *float64 `json:"average,omitempty"`
	}{
		EndDate:    time.Time(day).Format(model.DateLayout),
		WindowDays: window,
		Average:    avg,
	}
	respond.WriteJSON(w, http.StatusOK, resp)
}

// GetSummary GET /api/summary
func (h *EntryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Summary(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// GetTrend GET /api/trend
func (h *EntryHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	points, err := h.svc.Trend(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"points": points, "count": len(points)})
}

// GetCalendar GET /api/calendar/{year}/{month}
func (h *EntryHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	v := mux.Vars(r)
	year, err := strconv.Atoi(v["year"])
	if err != nil {
		respond.WriteBadRequest(w, "invalid year")
		return
	}
	month, err := strconv.Atoi(v["month"])
	if err != nil || month < 1 || month > 12 {
		respond.WriteBadRequest(w, "invalid month")
		return
	}

	entries, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, calendar.MonthGrid(year, time.Month(month), entries))
}

func parseDateVar(w http.ResponseWriter, r *http.Request) (strfmt.Date, bool) {
	raw := mux.Vars(r)["date"]
	d, err := time.Parse(model.DateLayout, raw)
	if err != nil {
		respond.WriteBadRequest(w, "date must be formatted YYYY-MM-DD")
		return strfmt.Date{}, false
	}
	return strfmt.Date(d), true
}
