// Package calendar builds the month grid the calendar page renders.
package calendar

import (
	"time"

	"github.com/mindful-labs/mood-tracker/internal/model"
	"github.com/mindful-labs/mood-tracker/internal/mood"
)

// Day is a single calendar cell. Day 0 marks padding cells outside the
// month; mood fields are only set when an entry was logged for the date.
type Day struct {
	Day   int    `json:"day"`
	Date  string `json:"date,omitempty"`
	Mood  *int   `json:"mood,omitempty"`
	Emoji string `json:"emoji,omitempty"`
	Color string `json:"color,omitempty"`
}

// Month is a Monday-first grid of weeks covering one calendar month.
type Month struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Name  string  `json:"name"`
	Weeks [][]Day `json:"weeks"`
}

// MonthGrid lays out the given month with the supplied entries. Weeks start
// on Monday; leading and trailing cells outside the month have Day 0.
func MonthGrid(year int, month time.Month, entries []*model.MoodEntry) Month {
	byDay := make(map[string]*model.MoodEntry, len(entries))
	for _, e := range entries {
		byDay[e.Day()] = e
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	// Monday-first offset of the 1st
	offset := (int(first.Weekday()) + 6) % 7

	out := Month{Year: year, Month: int(month), Name: month.String()}

	week := make([]Day, 0, 7)
	for i := 0; i < offset; i++ {
		week = append(week, Day{})
	}
	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		date := time.Date(year, month, dayNum, 0, 0, 0, 0, time.UTC).Format(model.DateLayout)
		cell := Day{Day: dayNum, Date: date}
		if e, ok := byDay[date]; ok {
			score := e.Mood
			cell.Mood = &score
			cell.Emoji = mood.Emoji(score)
			cell.Color = mood.Color(score)
		}
		week = append(week, cell)
		if len(week) == 7 {
			out.Weeks = append(out.Weeks, week)
			week = make([]Day, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, Day{})
		}
		out.Weeks = append(out.Weeks, week)
	}
	return out
}
