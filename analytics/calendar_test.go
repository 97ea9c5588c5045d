package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-journal/models"
)

func TestMonthRange(t *testing.T) {
	t.Parallel()

	start, end := MonthRange(2024, time.January)
	assert.Equal(t, "2024-01-01", start)
	assert.Equal(t, "2024-01-31", end)

	// Leap year February.
	start, end = MonthRange(2024, time.February)
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end)
}

func TestMonthRangeBoundaryExclusive(t *testing.T) {
	t.Parallel()

	// A trade on the last day of January is inside January's inclusive
	// bounds and outside February's. Date-only ISO strings compare
	// lexicographically, which is what the store query relies on.
	day := "2024-01-31"

	janStart, janEnd := MonthRange(2024, time.January)
	assert.GreaterOrEqual(t, day, janStart)
	assert.LessOrEqual(t, day, janEnd)

	febStart, _ := MonthRange(2024, time.February)
	assert.Less(t, day, febStart)
}

func findDay(t *testing.T, weeks []Week, date string) Day {
	t.Helper()
	for _, week := range weeks {
		for _, day := range week {
			if day.Date == date {
				return day
			}
		}
	}
	t.Fatalf("day %s not in grid", date)
	return Day{}
}

func TestBuildMonthGridSpansFullWeeks(t *testing.T) {
	t.Parallel()

	// January 2024 starts on a Monday and ends on a Wednesday: the grid
	// borrows Sunday Dec 31 and runs through Saturday Feb 3.
	weeks := BuildMonth(2024, time.January, nil)
	require.Len(t, weeks, 5)

	first := weeks[0][0]
	assert.Equal(t, "2023-12-31", first.Date)
	assert.False(t, first.InMonth)

	last := weeks[4][6]
	assert.Equal(t, "2024-02-03", last.Date)
	assert.False(t, last.InMonth)

	assert.True(t, findDay(t, weeks, "2024-01-01").InMonth)
	assert.True(t, findDay(t, weeks, "2024-01-31").InMonth)
}

func TestBuildMonthBucketsByDay(t *testing.T) {
	t.Parallel()

	trades := []models.Trade{
		{ID: "a", Date: "2024-01-15", PnL: 120, Result: models.ResultWin},
		{ID: "b", Date: "2024-01-15", PnL: -40, Result: models.ResultLoss},
		{ID: "c", Date: "2024-01-16", PnL: 30, Result: models.ResultWin},
	}

	weeks := BuildMonth(2024, time.January, trades)

	day := findDay(t, weeks, "2024-01-15")
	require.Len(t, day.Trades, 2)
	assert.InDelta(t, 80.0, day.PnL, 1e-9)
	assert.Equal(t, 1, day.Wins)
	assert.Equal(t, 1, day.Losses)

	next := findDay(t, weeks, "2024-01-16")
	require.Len(t, next.Trades, 1)
	assert.Equal(t, "c", next.Trades[0].ID)
}

func TestBuildMonthMatchesDatetimeByDay(t *testing.T) {
	t.Parallel()

	// A stored datetime still buckets by its calendar day.
	trades := []models.Trade{
		{ID: "a", Date: "2024-01-15T13:45:00Z", PnL: 50, Result: models.ResultWin},
	}

	weeks := BuildMonth(2024, time.January, trades)
	day := findDay(t, weeks, "2024-01-15")
	require.Len(t, day.Trades, 1)
	assert.Equal(t, "a", day.Trades[0].ID)
}

func TestBuildMonthListsBreakevens(t *testing.T) {
	t.Parallel()

	trades := []models.Trade{
		{ID: "a", Date: "2024-01-10", PnL: 0, Result: models.ResultBreakeven},
	}

	weeks := BuildMonth(2024, time.January, trades)
	day := findDay(t, weeks, "2024-01-10")

	// Breakevens show up in the day listing but carry no win/loss marker.
	require.Len(t, day.Trades, 1)
	assert.Zero(t, day.Wins)
	assert.Zero(t, day.Losses)
}

func TestBuildMonthLastDayNotInNextGridMonth(t *testing.T) {
	t.Parallel()

	// Jan 31 appears in February's grid as a borrowed cell, flagged
	// out-of-month.
	weeks := BuildMonth(2024, time.February, nil)
	day := findDay(t, weeks, "2024-01-31")
	assert.False(t, day.InMonth)
}
