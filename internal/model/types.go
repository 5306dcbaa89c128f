package model

import (
	"time"

	"github.com/go-openapi/strfmt"
)

// DateLayout is the wire format for calendar dates, both in JSON and in the
// CSV backing file.
const DateLayout = "2006-01-02"

// MoodEntry is one day's mood record. Date is the unique key; saving twice
// for the same date replaces the whole record and refreshes Timestamp.
type MoodEntry struct {
	Date        strfmt.Date `json:"date"`
	Mood        int         `json:"mood"`
	SleepHours  *float64    `json:"sleepHours,omitempty"`
	Exercise    *string     `json:"exercise,omitempty"`
	DietQuality *string     `json:"dietQuality,omitempty"`
	Journal     string      `json:"journal"`
	Timestamp   time.Time   `json:"timestamp"`
}

// Day returns the entry's date formatted with DateLayout.
func (e *MoodEntry) Day() string {
	return time.Time(e.Date).Format(DateLayout)
}

// SameDay reports whether the entry falls on the given calendar date.
func (e *MoodEntry) SameDay(d strfmt.Date) bool {
	return e.Day() == time.Time(d).Format(DateLayout)
}
