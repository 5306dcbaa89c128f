// Package stats provides descriptive statistics over loaded entry
// collections. All functions are pure; empty inputs report ok=false rather
// than erroring, matching the tracker's best-effort read paths.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/go-openapi/strfmt"

	"github.com/mindful-labs/mood-tracker/internal/model"
)

// Point is one step of the chronological mood series.
type Point struct {
	Date strfmt.Date `json:"date"`
	Mood int         `json:"mood"`
}

// Mean returns the arithmetic mean of mood across all entries.
func Mean(entries []*model.MoodEntry) (float64, bool) {
	if len(entries) == 0 {
		return 0, false
	}
	sum := 0
	for _, e := range entries {
		sum += e.Mood
	}
	return float64(sum) / float64(len(entries)), true
}

// Max returns the highest mood recorded.
func Max(entries []*model.MoodEntry) (int, bool) {
	if len(entries) == 0 {
		return 0, false
	}
	max := entries[0].Mood
	for _, e := range entries[1:] {
		if e.Mood > max {
			max = e.Mood
		}
	}
	return max, true
}

// StdDev returns the sample standard deviation of mood. At least two entries
// are required; fewer report ok=false.
func StdDev(entries []*model.MoodEntry) (float64, bool) {
	n := len(entries)
	if n < 2 {
		return 0, false
	}
	mean, _ := Mean(entries)
	var ss float64
	for _, e := range entries {
		d := float64(e.Mood) - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1)), true
}

// Histogram returns a frequency count keyed by observed mood value.
func Histogram(entries []*model.MoodEntry) map[int]int {
	h := make(map[int]int)
	for _, e := range entries {
		h[e.Mood]++
	}
	return h
}

// Series returns (date, mood) points in chronological order.
func Series(entries []*model.MoodEntry) []Point {
	points := make([]Point, 0, len(entries))
	for _, e := range entries {
		points = append(points, Point{Date: e.Date, Mood: e.Mood})
	}
	sort.Slice(points, func(i, j int) bool {
		return time.Time(points[i].Date).Before(time.Time(points[j].Date))
	})
	return points
}

// TrailingMean returns the mean mood over entries dated within
// [end-(windowDays-1), end] inclusive. ok is false when the window holds no
// entries.
func TrailingMean(entries []*model.MoodEntry, end strfmt.Date, windowDays int) (float64, bool) {
	if windowDays < 1 {
		return 0, false
	}
	endDay := truncateToDay(time.Time(end))
	startDay := endDay.AddDate(0, 0, -(windowDays - 1))

	sum, n := 0, 0
	for _, e := range entries {
		d := truncateToDay(time.Time(e.Date))
		if d.Before(startDay) || d.After(endDay) {
			continue
		}
		sum += e.Mood
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
