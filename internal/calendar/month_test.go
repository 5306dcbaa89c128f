package calendar

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindful-labs/mood-tracker/internal/model"
)

func TestMonthGrid_Shape(t *testing.T) {
	// March 2025: the 1st is a Saturday, 31 days
	m := MonthGrid(2025, time.March, nil)

	assert.Equal(t, 2025, m.Year)
	assert.Equal(t, 3, m.Month)
	assert.Equal(t, "March", m.Name)
	require.Len(t, m.Weeks, 6)
	for _, week := range m.Weeks {
		assert.Len(t, week, 7)
	}

	// Monday-first: Sat Mar 1 sits at index 5 of the first week
	first := m.Weeks[0]
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, first[i].Day)
	}
	assert.Equal(t, 1, first[5].Day)
	assert.Equal(t, 2, first[6].Day)

	// trailing padding after Mon Mar 31
	last := m.Weeks[5]
	assert.Equal(t, 31, last[0].Day)
	assert.Equal(t, 0, last[1].Day)
}

func TestMonthGrid_February(t *testing.T) {
	// February 2027: 28 days, the 1st is a Monday - exactly 4 full weeks
	m := MonthGrid(2027, time.February, nil)

	require.Len(t, m.Weeks, 4)
	assert.Equal(t, 1, m.Weeks[0][0].Day)
	assert.Equal(t, 28, m.Weeks[3][6].Day)
}

func TestMonthGrid_MoodCells(t *testing.T) {
	d, err := time.Parse(model.DateLayout, "2025-03-10")
	require.NoError(t, err)
	entries := []*model.MoodEntry{{Date: strfmt.Date(d), Mood: 5}}

	m := MonthGrid(2025, time.March, entries)

	// Mon Mar 10 leads the third week
	cell := m.Weeks[2][0]
	require.Equal(t, 10, cell.Day)
	require.NotNil(t, cell.Mood)
	assert.Equal(t, 5, *cell.Mood)
	assert.Equal(t, "😄", cell.Emoji)
	assert.Equal(t, "#4ECDC4", cell.Color)

	// unlogged day carries no mood metadata
	empty := m.Weeks[2][1]
	assert.Equal(t, 11, empty.Day)
	assert.Nil(t, empty.Mood)
	assert.Empty(t, empty.Emoji)
}
