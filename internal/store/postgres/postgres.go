// Package postgres implements the store contract over PostgreSQL via the pgx
// stdlib driver. Like the sqlite driver it is an indexed upgrade path from
// the flat CSV file; the public contract is unchanged.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mindful-labs/mood-tracker/internal/model"
	"github.com/mindful-labs/mood-tracker/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS mood_entries (
    date         DATE PRIMARY KEY,
    mood         INTEGER NOT NULL,
    sleep_hours  DOUBLE PRECISION,
    exercise     TEXT,
    diet_quality TEXT,
    journal      TEXT NOT NULL DEFAULT '',
    timestamp    TIMESTAMPTZ NOT NULL
);`

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies
// connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *pgStore) Upsert(ctx context.Context, entry *model.MoodEntry) (*model.MoodEntry, error) {
	stored := *entry
	stored.Timestamp = time.Now()

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO mood_entries (date, mood, sleep_hours, exercise, diet_quality, journal, timestamp)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (date) DO UPDATE SET
            mood         = EXCLUDED.mood,
            sleep_hours  = EXCLUDED.sleep_hours,
            exercise     = EXCLUDED.exercise,
            diet_quality = EXCLUDED.diet_quality,
            journal      = EXCLUDED.journal,
            timestamp    = EXCLUDED.timestamp
    `, stored.Day(), stored.Mood, stored.SleepHours, stored.Exercise, stored.DietQuality,
		stored.Journal, stored.Timestamp)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *pgStore) Get(ctx context.Context, day strfmt.Date) (*model.MoodEntry, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT date, mood, sleep_hours, exercise, diet_quality, journal, timestamp
        FROM mood_entries WHERE date = $1
    `, time.Time(day).Format(model.DateLayout))

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	return e, err
}

func (s *pgStore) List(ctx context.Context) ([]*model.MoodEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT date, mood, sleep_hours, exercise, diet_quality, journal, timestamp
        FROM mood_entries ORDER BY date
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

func (s *pgStore) TrailingAverage(ctx context.Context, end strfmt.Date, windowDays int) (*float64, error) {
	if windowDays < 1 {
		return nil, nil
	}
	endDay := time.Time(end)
	startDay := endDay.AddDate(0, 0, -(windowDays - 1))

	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
        SELECT AVG(mood) FROM mood_entries WHERE date BETWEEN $1 AND $2
    `, startDay.Format(model.DateLayout), endDay.Format(model.DateLayout)).Scan(&avg)
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// HealthPing implements health probing for the Postgres-backed store.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *pgStore) Close() error { return s.db.Close() }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*model.MoodEntry, error) {
	var (
		e   model.MoodEntry
		day time.Time
		ts  time.Time
	)
	if err := row.Scan(&day, &e.Mood, &e.SleepHours, &e.Exercise, &e.DietQuality, &e.Journal, &ts); err != nil {
		return nil, err
	}
	e.Date = strfmt.Date(day)
	e.Timestamp = ts
	return &e, nil
}
