// Package csv implements the default store driver: a flat CSV file with one
// row per calendar date, compatible with data files written by earlier
// versions of the tracker.
package csv

import (
	"context"
	encsv "encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/mindful-labs/mood-tracker/internal/model"
	"github.com/mindful-labs/mood-tracker/internal/stats"
)

// columns is the declared header row. Order and naming are load-bearing:
// existing data files must keep loading.
var columns = []string{"date", "mood", "sleep_hours", "exercise", "diet_quality", "journal", "timestamp"}

// Store persists MoodEntry records in a single CSV file. Every write is a
// full-file rewrite; reads degrade to an empty collection when the file is
// missing or unreadable. Single-process access is assumed throughout.
type Store struct {
	path string
}

// New returns a CSV store rooted at path. Call Init before first use.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string { return s.path }

// Init creates the backing file with the declared header row if it does not
// exist yet. Idempotent: an already-populated file is left untouched.
func (s *Store) Init(ctx context.Context) error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return s.writeAll(nil)
}

// Upsert replaces the row for entry.Date if present, appends otherwise, and
// rewrites the whole file. The write timestamp is refreshed on every save.
func (s *Store) Upsert(ctx context.Context, entry *model.MoodEntry) (*model.MoodEntry, error) {
	entries := s.readAll()

	stored := *entry
	stored.Timestamp = time.Now()

	replaced := false
	for i, e := range entries {
		if e.SameDay(stored.Date) {
			entries[i] = &stored
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, &stored)
	}

	if err := s.writeAll(entries); err != nil {
		return nil, err
	}
	return &stored, nil
}

// Get returns the entry for the given date, or model.ErrNotFound.
func (s *Store) Get(ctx context.Context, day strfmt.Date) (*model.MoodEntry, error) {
	for _, e := range s.readAll() {
		if e.SameDay(day) {
			out := *e
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

// List returns all entries in file order.
func (s *Store) List(ctx context.Context) ([]*model.MoodEntry, error) {
	return s.readAll(), nil
}

// TrailingAverage returns the mean mood over the windowDays-day window ending
// at end, inclusive, or nil when the window holds no entries.
func (s *Store) TrailingAverage(ctx context.Context, end strfmt.Date, windowDays int) (*float64, error) {
	avg, ok := stats.TrailingMean(s.readAll(), end, windowDays)
	if !ok {
		return nil, nil
	}
	return &avg, nil
}

// HealthPing verifies the backing file is present or creatable.
func (s *Store) HealthPing(ctx context.Context) error {
	return s.Init(ctx)
}

func (s *Store) Close() error { return nil }

// readAll loads every row from the backing file. Missing, unreadable or
// structurally broken files yield an empty collection; individually
// malformed rows are skipped.
func (s *Store) readAll() []*model.MoodEntry {
	f, err := os.Open(s.path)
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	r := encsv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil || len(rows) == 0 {
		return nil
	}

	var entries []*model.MoodEntry
	for _, row := range rows[1:] { // rows[0] is the header
		if e, ok := decodeRow(row); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

func (s *Store) writeAll(entries []*model.MoodEntry) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}

	w := encsv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		_ = f.Close()
		return err
	}
	for _, e := range entries {
		if err := w.Write(encodeRow(e)); err != nil {
			_ = f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func decodeRow(row []string) (*model.MoodEntry, bool) {
	if len(row) != len(columns) {
		return nil, false
	}

	day, err := time.Parse(model.DateLayout, row[0])
	if err != nil {
		return nil, false
	}
	mood, err := strconv.Atoi(row[1])
	if err != nil {
		return nil, false
	}

	e := &model.MoodEntry{
		Date:    strfmt.Date(day),
		Mood:    mood,
		Journal: row[5],
	}
	if row[2] != "" {
		if v, err := strconv.ParseFloat(row[2], 64); err == nil {
			e.SleepHours = &v
		}
	}
	if row[3] != "" {
		v := row[3]
		e.Exercise = &v
	}
	if row[4] != "" {
		v := row[4]
		e.DietQuality = &v
	}
	e.Timestamp = parseTimestamp(row[6])
	return e, true
}

func encodeRow(e *model.MoodEntry) []string {
	row := make([]string, len(columns))
	row[0] = e.Day()
	row[1] = strconv.Itoa(e.Mood)
	if e.SleepHours != nil {
		row[2] = strconv.FormatFloat(*e.SleepHours, 'f', -1, 64)
	}
	if e.Exercise != nil {
		row[3] = *e.Exercise
	}
	if e.DietQuality != nil {
		row[4] = *e.DietQuality
	}
	row[5] = e.Journal
	if !e.Timestamp.IsZero() {
		row[6] = e.Timestamp.Format(time.RFC3339Nano)
	}
	return row
}

// parseTimestamp accepts RFC 3339 and the zone-less ISO-8601 form the
// original application wrote. Unparseable values become the zero time; the
// timestamp is audit-only and never gates a read.
func parseTimestamp(v string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts
		}
	}
	return time.Time{}
}
