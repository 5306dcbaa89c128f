package services

import (
	"context"

	"github.com/go-openapi/strfmt"

	"github.com/mindful-labs/mood-tracker/internal/model"
	"github.com/mindful-labs/mood-tracker/internal/stats"
	"github.com/mindful-labs/mood-tracker/internal/store"
)

// EntryService orchestrates the store and the derived aggregate helpers the
// presentation layer consumes.
type EntryService struct {
	store store.Store
}

func NewEntryService(s store.Store) *EntryService {
	return &EntryService{store: s}
}

// Summary carries the descriptive statistics shown on the analytics page.
// Aggregates are omitted when the store holds no entries.
type Summary struct {
	Count     int         `json:"count"`
	Mean      *float64    `json:"mean,omitempty"`
	Max       *int        `json:"max,omitempty"`
	StdDev    *float64    `json:"stdDev,omitempty"`
	Histogram map[int]int `json:"histogram"`
}

func (s *EntryService) Upsert(ctx context.Context, e *model.MoodEntry) (*model.MoodEntry, error) {
	return s.store.Upsert(ctx, e)
}

func (s *EntryService) Get(ctx context.Context, day strfmt.Date) (*model.MoodEntry, error) {
	return s.store.Get(ctx, day)
}

func (s *EntryService) List(ctx context.Context) ([]*model.MoodEntry, error) {
	return s.store.List(ctx)
}

func (s *EntryService) TrailingAverage(ctx context.Context, end strfmt.Date, windowDays int) (*float64, error) {
	return s.store.TrailingAverage(ctx, end, windowDays)
}

// Summary computes mean, max, standard deviation and the mood histogram over
// all entries.
func (s *EntryService) Summary(ctx context.Context) (*Summary, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &Summary{Count: len(entries), Histogram: stats.Histogram(entries)}
	if mean, ok := stats.Mean(entries); ok {
		out.Mean = &mean
	}
	if max, ok := stats.Max(entries); ok {
		out.Max = &max
	}
	if sd, ok := stats.StdDev(entries); ok {
		out.StdDev = &sd
	}
	return out, nil
}

// Trend returns the chronological (date, mood) series for trend display.
func (s *EntryService) Trend(ctx context.Context) ([]stats.Point, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Series(entries), nil
}
