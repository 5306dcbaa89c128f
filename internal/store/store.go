package store

import (
	"context"

	"github.com/go-openapi/strfmt"

	"github.com/mindful-labs/mood-tracker/internal/model"
)

// Store exposes the persistence operations required by the service.
// Implementations live under internal/store/<driver>/ (csv, sqlite, postgres).
//
// A store holds at most one MoodEntry per calendar date. Upsert replaces the
// whole record for the entry's date, or appends a new one; there is no delete.
type Store interface {
	// Init ensures the backing file or table exists with the declared
	// column set. Idempotent; safe to call on every process start.
	Init(ctx context.Context) error

	// Upsert inserts or fully replaces the entry for entry.Date and stamps
	// the write time. Mood is persisted as given, without range checks.
	Upsert(ctx context.Context, entry *model.MoodEntry) (*model.MoodEntry, error)

	// Get returns the entry for the given date, or model.ErrNotFound.
	Get(ctx context.Context, day strfmt.Date) (*model.MoodEntry, error)

	// List returns all entries in backing-store order.
	List(ctx context.Context) ([]*model.MoodEntry, error)

	// TrailingAverage returns the mean mood over entries dated within
	// [end-(windowDays-1), end] inclusive, or nil when the window holds
	// no entries.
	TrailingAverage(ctx context.Context, end strfmt.Date, windowDays int) (*float64, error)

	Close() error
}
