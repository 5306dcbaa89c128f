package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindful-labs/mood-tracker/internal/health"
	"github.com/mindful-labs/mood-tracker/internal/model"
	"github.com/mindful-labs/mood-tracker/internal/services"
	csvstore "github.com/mindful-labs/mood-tracker/internal/store/csv"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := csvstore.New(filepath.Join(t.TempDir(), "mood_data.csv"))
	require.NoError(t, st.Init(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	checker := health.NewStoreChecker(st, zerolog.Nop(), time.Second)
	go checker.Start(ctx, time.Minute)

	router := NewRouter(NewEntryHandler(services.NewEntryService(st)), NewHealthHandler(checker), nil)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postEntry(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/entries", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, srv *httptest.Server, path string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestCreateAndGetEntry(t *testing.T) {
	srv := newTestServer(t)

	resp := postEntry(t, srv, `{"date":"2025-03-10","mood":4,"sleepHours":7.5,"exercise":"Light","dietQuality":"Good","journal":"solid day"}`)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Entry struct {
			Date string `json:"date"`
			Mood int    `json:"mood"`
		} `json:"entry"`
		Suggestion string `json:"suggestion"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "2025-03-10", created.Entry.Date)
	assert.Equal(t, 4, created.Entry.Mood)
	assert.NotEmpty(t, created.Suggestion)

	var got struct {
		Date       string   `json:"date"`
		Mood       int      `json:"mood"`
		SleepHours *float64 `json:"sleepHours"`
		Journal    string   `json:"journal"`
	}
	code := getJSON(t, srv, "/api/entries/2025-03-10", &got)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "2025-03-10", got.Date)
	assert.Equal(t, 4, got.Mood)
	require.NotNil(t, got.SleepHours)
	assert.InDelta(t, 7.5, *got.SleepHours, 1e-9)
	assert.Equal(t, "solid day", got.Journal)
}

func TestCreateEntryReplacesSameDate(t *testing.T) {
	srv := newTestServer(t)

	resp := postEntry(t, srv, `{"date":"2025-03-10","mood":2,"journal":"rough"}`)
	_ = resp.Body.Close()
	resp = postEntry(t, srv, `{"date":"2025-03-10","mood":5}`)
	_ = resp.Body.Close()

	var listed struct {
		Entries []struct {
			Mood    int    `json:"mood"`
			Journal string `json:"journal"`
		} `json:"entries"`
		Count int `json:"count"`
	}
	code := getJSON(t, srv, "/api/entries", &listed)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 1, listed.Count)
	assert.Equal(t, 5, listed.Entries[0].Mood)
	assert.Equal(t, "", listed.Entries[0].Journal)
}

func TestCreateEntryValidation(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing date", `{"mood":3}`},
		{"missing mood", `{"date":"2025-03-10"}`},
		{"bad json", `{"date":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postEntry(t, srv, tc.body)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreateEntryRequestValidationSentinel(t *testing.T) {
	var req createEntryRequest
	require.ErrorIs(t, req.validate(), model.ErrValidation)

	d, err := time.Parse("2006-01-02", "2025-03-10")
	require.NoError(t, err)
	req.Date = strfmt.Date(d)
	require.ErrorIs(t, req.validate(), model.ErrValidation)

	m := 3
	req.Mood = &m
	require.NoError(t, req.validate())
}

func TestCreateEntryAcceptsOutOfRangeMood(t *testing.T) {
	srv := newTestServer(t)

	resp := postEntry(t, srv, `{"date":"2025-03-10","mood":11}`)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got struct {
		Mood int `json:"mood"`
	}
	code := getJSON(t, srv, "/api/entries/2025-03-10", &got)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 11, got.Mood)
}

func TestGetEntryNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/entries/2025-03-10")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetEntryBadDate(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/entries/not-a-date")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListEntriesEmpty(t *testing.T) {
	srv := newTestServer(t)

	var listed struct {
		Entries []json.RawMessage `json:"entries"`
		Count   int               `json:"count"`
	}
	code := getJSON(t, srv, "/api/entries", &listed)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, listed.Count)
	assert.NotNil(t, listed.Entries)
}

func TestTrailingAverage(t *testing.T) {
	srv := newTestServer(t)

	for day, mood := range map[string]int{"2025-03-04": 2, "2025-03-07": 4, "2025-03-10": 5} {
		resp := postEntry(t, srv, fmt.Sprintf(`{"date":%q,"mood":%d}`, day, mood))
		_ = resp.Body.Close()
	}

	var got struct {
		EndDate    string   `json:"endDate"`
		WindowDays int      `json:"windowDays"`
		Average    *float64 `json:"average"`
	}
	code := getJSON(t, srv, "/api/entries/2025-03-10/average?window=7", &got)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "2025-03-10", got.EndDate)
	assert.Equal(t, 7, got.WindowDays)
	require.NotNil(t, got.Average)
	assert.InDelta(t, 11.0/3.0, *got.Average, 1e-9)
}

func TestTrailingAverageEmptyWindowOmitsAverage(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/entries/2025-03-10/average")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	_, present := raw["average"]
	assert.False(t, present)
}

func TestTrailingAverageRejectsBadWindow(t *testing.T) {
	srv := newTestServer(t)

	for _, q := range []string{"window=0", "window=-3", "window=abc"} {
		resp, err := http.Get(srv.URL + "/api/entries/2025-03-10/average?" + q)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestSummary(t *testing.T) {
	srv := newTestServer(t)

	moods := map[string]int{
		"2025-03-01": 1, "2025-03-02": 1, "2025-03-03": 3, "2025-03-04": 5, "2025-03-05": 5,
	}
	for day, mood := range moods {
		resp := postEntry(t, srv, fmt.Sprintf(`{"date":%q,"mood":%d}`, day, mood))
		_ = resp.Body.Close()
	}

	var got struct {
		Count     int            `json:"count"`
		Mean      *float64       `json:"mean"`
		Max       *int           `json:"max"`
		StdDev    *float64       `json:"stdDev"`
		Histogram map[string]int `json:"histogram"`
	}
	code := getJSON(t, srv, "/api/summary", &got)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 5, got.Count)
	require.NotNil(t, got.Mean)
	assert.InDelta(t, 3.0, *got.Mean, 1e-9)
	require.NotNil(t, got.Max)
	assert.Equal(t, 5, *got.Max)
	require.NotNil(t, got.StdDev)
	assert.Equal(t, map[string]int{"1": 2, "3": 1, "5": 2}, got.Histogram)
}

func TestSummaryEmptyStore(t *testing.T) {
	srv := newTestServer(t)

	var raw map[string]json.RawMessage
	code := getJSON(t, srv, "/api/summary", &raw)
	require.Equal(t, http.StatusOK, code)

	var count int
	require.NoError(t, json.Unmarshal(raw["count"], &count))
	assert.Equal(t, 0, count)
	for _, field := range []string{"mean", "max", "stdDev"} {
		_, present := raw[field]
		assert.False(t, present, field)
	}
}

func TestTrendSortedByDate(t *testing.T) {
	srv := newTestServer(t)

	for _, day := range []string{"2025-03-10", "2025-03-02", "2025-03-07"} {
		resp := postEntry(t, srv, fmt.Sprintf(`{"date":%q,"mood":3}`, day))
		_ = resp.Body.Close()
	}

	var got struct {
		Points []struct {
			Date string `json:"date"`
		} `json:"points"`
		Count int `json:"count"`
	}
	code := getJSON(t, srv, "/api/trend", &got)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 3, got.Count)
	assert.Equal(t, "2025-03-02", got.Points[0].Date)
	assert.Equal(t, "2025-03-07", got.Points[1].Date)
	assert.Equal(t, "2025-03-10", got.Points[2].Date)
}

func TestCalendarEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postEntry(t, srv, `{"date":"2025-03-10","mood":5}`)
	_ = resp.Body.Close()

	var got struct {
		Year  int    `json:"year"`
		Month int    `json:"month"`
		Name  string `json:"name"`
		Weeks [][]struct {
			Day  int  `json:"day"`
			Mood *int `json:"mood"`
		} `json:"weeks"`
	}
	code := getJSON(t, srv, "/api/calendar/2025/3", &got)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2025, got.Year)
	assert.Equal(t, 3, got.Month)
	assert.Equal(t, "March", got.Name)
	require.Len(t, got.Weeks, 6)

	// 2025-03-10 sits on the Monday of the third row.
	cell := got.Weeks[2][0]
	assert.Equal(t, 10, cell.Day)
	require.NotNil(t, cell.Mood)
	assert.Equal(t, 5, *cell.Mood)
}

func TestCalendarRejectsBadMonth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/calendar/2025/13")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// The checker probes on its own schedule; wait for the first one.
	assert.Eventually(t, func() bool {
		resp, err := http.Get(srv.URL + "/api/health")
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		var got map[string]string
		if json.NewDecoder(resp.Body).Decode(&got) != nil {
			return false
		}
		return resp.StatusCode == http.StatusOK && got["status"] == "UP"
	}, 3*time.Second, 50*time.Millisecond)
}
