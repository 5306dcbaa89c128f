package stats

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindful-labs/mood-tracker/internal/model"
)

func day(t *testing.T, s string) strfmt.Date {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	require.NoError(t, err)
	return strfmt.Date(d)
}

func entry(t *testing.T, date string, mood int) *model.MoodEntry {
	t.Helper()
	return &model.MoodEntry{Date: day(t, date), Mood: mood}
}

func TestMeanMaxHistogram(t *testing.T) {
	entries := []*model.MoodEntry{
		entry(t, "2025-03-01", 1),
		entry(t, "2025-03-02", 1),
		entry(t, "2025-03-03", 3),
		entry(t, "2025-03-04", 5),
		entry(t, "2025-03-05", 5),
	}

	mean, ok := Mean(entries)
	require.True(t, ok)
	assert.InDelta(t, 3.0, mean, 1e-9)

	max, ok := Max(entries)
	require.True(t, ok)
	assert.Equal(t, 5, max)

	assert.Equal(t, map[int]int{1: 2, 3: 1, 5: 2}, Histogram(entries))
}

func TestStdDev_SampleFlavor(t *testing.T) {
	entries := []*model.MoodEntry{
		entry(t, "2025-03-01", 2),
		entry(t, "2025-03-02", 4),
	}
	// sample stddev of {2,4} is sqrt(2)
	sd, ok := StdDev(entries)
	require.True(t, ok)
	assert.InDelta(t, 1.4142135623, sd, 1e-9)
}

func TestStdDev_NeedsTwoEntries(t *testing.T) {
	_, ok := StdDev([]*model.MoodEntry{entry(t, "2025-03-01", 3)})
	assert.False(t, ok)
}

func TestEmptyCollection(t *testing.T) {
	_, ok := Mean(nil)
	assert.False(t, ok)
	_, ok = Max(nil)
	assert.False(t, ok)
	assert.Empty(t, Histogram(nil))
	assert.Empty(t, Series(nil))
}

func TestSeries_Chronological(t *testing.T) {
	entries := []*model.MoodEntry{
		entry(t, "2025-03-05", 4),
		entry(t, "2025-03-01", 2),
		entry(t, "2025-03-03", 5),
	}

	points := Series(entries)
	require.Len(t, points, 3)
	assert.Equal(t, 2, points[0].Mood)
	assert.Equal(t, 5, points[1].Mood)
	assert.Equal(t, 4, points[2].Mood)
}

func TestTrailingMean_Window(t *testing.T) {
	// entries at d-6, d-3 and d; everything else absent
	entries := []*model.MoodEntry{
		entry(t, "2025-03-04", 2),
		entry(t, "2025-03-07", 4),
		entry(t, "2025-03-10", 5),
	}

	avg, ok := TrailingMean(entries, day(t, "2025-03-10"), 7)
	require.True(t, ok)
	assert.InDelta(t, 11.0/3.0, avg, 1e-9)
}

func TestTrailingMean_ExcludesOutsideWindow(t *testing.T) {
	entries := []*model.MoodEntry{
		entry(t, "2025-03-03", 1), // d-7: one day too old
		entry(t, "2025-03-04", 2), // d-6: oldest included day
		entry(t, "2025-03-11", 5), // d+1: future
	}

	avg, ok := TrailingMean(entries, day(t, "2025-03-10"), 7)
	require.True(t, ok)
	assert.InDelta(t, 2.0, avg, 1e-9)
}

func TestTrailingMean_EmptyWindow(t *testing.T) {
	_, ok := TrailingMean(nil, day(t, "2025-03-10"), 7)
	assert.False(t, ok)

	entries := []*model.MoodEntry{entry(t, "2025-01-01", 5)}
	_, ok = TrailingMean(entries, day(t, "2025-03-10"), 7)
	assert.False(t, ok)
}
