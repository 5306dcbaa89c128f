// Package storetest holds a compliance suite shared by all store drivers.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/mindful-labs/mood-tracker/internal/model"
	"github.com/mindful-labs/mood-tracker/internal/store"
)

// TestStore is the contract the suite exercises.
type TestStore = store.Store

// Run exercises a minimal compliance suite against a store implementation.
// makeStore must return a clean, isolated, initialized store.
func Run(t *testing.T, makeStore func(t *testing.T) TestStore) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	mustDay := func(v string) strfmt.Date {
		d, err := time.Parse(model.DateLayout, v)
		if err != nil {
			t.Fatalf("parse day %s: %v", v, err)
		}
		return strfmt.Date(d)
	}

	// Init is idempotent
	if err := s.Init(ctx); err != nil {
		t.Fatalf("Init (second call): %v", err)
	}

	// Empty store
	if _, err := s.Get(ctx, mustDay("2025-03-10")); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Get on empty store: want ErrNotFound, got %v", err)
	}
	if lst, err := s.List(ctx); err != nil || len(lst) != 0 {
		t.Fatalf("List on empty store: n=%d err=%v", len(lst), err)
	}
	if avg, err := s.TrailingAverage(ctx, mustDay("2025-03-10"), 7); err != nil || avg != nil {
		t.Fatalf("TrailingAverage on empty store: avg=%v err=%v", avg, err)
	}

	// Upsert then Get returns the written fields
	d := mustDay("2025-03-10")
	journal := "walked by the river"
	if _, err := s.Upsert(ctx, &model.MoodEntry{Date: d, Mood: 4, Journal: journal}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	got, err := s.Get(ctx, d)
	if err != nil {
		t.Fatalf("Get after Upsert: %v", err)
	}
	if got.Mood != 4 || got.Journal != journal {
		t.Fatalf("Get after Upsert: got %+v", got)
	}
	if got.Timestamp.IsZero() {
		t.Fatalf("Get after Upsert: timestamp not set")
	}

	// Second upsert for the same date fully replaces the record
	if _, err := s.Upsert(ctx, &model.MoodEntry{Date: d, Mood: 2}); err != nil {
		t.Fatalf("Upsert (replace): %v", err)
	}
	lst, err := s.List(ctx)
	if err != nil || len(lst) != 1 {
		t.Fatalf("List after replace: n=%d err=%v", len(lst), err)
	}
	if lst[0].Mood != 2 || lst[0].Journal != "" {
		t.Fatalf("List after replace: got %+v", lst[0])
	}

	// Trailing window excludes entries older than windowDays
	if _, err := s.Upsert(ctx, &model.MoodEntry{Date: mustDay("2025-03-01"), Mood: 5}); err != nil {
		t.Fatalf("Upsert (old entry): %v", err)
	}
	avg, err := s.TrailingAverage(ctx, d, 7)
	if err != nil || avg == nil {
		t.Fatalf("TrailingAverage: avg=%v err=%v", avg, err)
	}
	if *avg != 2.0 {
		t.Fatalf("TrailingAverage: want 2.0, got %v", *avg)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
