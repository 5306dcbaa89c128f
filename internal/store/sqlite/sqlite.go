// Package sqlite implements the store contract over an embedded SQLite
// database. It is the indexed upgrade path from the flat CSV file; the public
// contract is unchanged.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/mindful-labs/mood-tracker/internal/model"
	"github.com/mindful-labs/mood-tracker/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS mood_entries (
    date         TEXT PRIMARY KEY,
    mood         INTEGER NOT NULL,
    sleep_hours  REAL,
    exercise     TEXT,
    diet_quality TEXT,
    journal      TEXT NOT NULL DEFAULT '',
    timestamp    TEXT NOT NULL
);`

type sqliteStore struct {
	db *sql.DB
}

// New opens (or creates) a SQLite database file and returns a store over it.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB allows wiring with an existing connection (used by the factory
// and by tests).
func NewWithDB(db *sql.DB) store.Store {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *sqliteStore) Upsert(ctx context.Context, entry *model.MoodEntry) (*model.MoodEntry, error) {
	stored := *entry
	stored.Timestamp = time.Now()

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO mood_entries (date, mood, sleep_hours, exercise, diet_quality, journal, timestamp)
        VALUES (?,?,?,?,?,?,?)
        ON CONFLICT(date) DO UPDATE SET
            mood         = excluded.mood,
            sleep_hours  = excluded.sleep_hours,
            exercise     = excluded.exercise,
            diet_quality = excluded.diet_quality,
            journal      = excluded.journal,
            timestamp    = excluded.timestamp
    `, stored.Day(), stored.Mood, stored.SleepHours, stored.Exercise, stored.DietQuality,
		stored.Journal, stored.Timestamp.Format(time.RFC3339Nano))
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *sqliteStore) Get(ctx context.Context, day strfmt.Date) (*model.MoodEntry, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT date, mood, sleep_hours, exercise, diet_quality, journal, timestamp
        FROM mood_entries WHERE date = ?
    `, time.Time(day).Format(model.DateLayout))

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	return e, err
}

func (s *sqliteStore) List(ctx context.Context) ([]*model.MoodEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT date, mood, sleep_hours, exercise, diet_quality, journal, timestamp
        FROM mood_entries ORDER BY rowid
    `)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	entries := []*model.MoodEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *sqliteStore) TrailingAverage(ctx context.Context, end strfmt.Date, windowDays int) (*float64, error) {
	if windowDays < 1 {
		return nil, nil
	}
	endDay := time.Time(end)
	startDay := endDay.AddDate(0, 0, -(windowDays - 1))

	// ISO dates compare correctly as text
	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
        SELECT AVG(mood) FROM mood_entries WHERE date BETWEEN ? AND ?
    `, startDay.Format(model.DateLayout), endDay.Format(model.DateLayout)).Scan(&avg)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// HealthPing implements health probing for the SQLite-backed store.
func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqliteStore) Close() error { return s.db.Close() }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*model.MoodEntry, error) {
	var (
		e   model.MoodEntry
		day string
		ts  string
	)
	if err := row.Scan(&day, &e.Mood, &e.SleepHours, &e.Exercise, &e.DietQuality, &e.Journal, &ts); err != nil {
		return nil, err
	}

	d, err := time.Parse(model.DateLayout, day)
	if err != nil {
		return nil, err
	}
	e.Date = strfmt.Date(d)
	if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
		e.Timestamp = parsed
	}
	return &e, nil
}
