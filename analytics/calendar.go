package analytics

import (
	"time"

	"trade-journal/models"
)

// Day is one cell of the month grid. InMonth is false for the trailing and
// leading days borrowed from adjacent months to complete the first and last
// week rows; the UI renders those de-emphasized and non-interactive.
type Day struct {
	Date    string         `json:"date"`
	DayNum  int            `json:"day"`
	InMonth bool           `json:"inMonth"`
	Trades  []models.Trade `json:"trades"`
	PnL     float64        `json:"pnl"`
	Wins    int            `json:"wins"`
	Losses  int            `json:"losses"`
}

// Week is one grid row, Sunday through Saturday.
type Week [7]Day

const dateLayout = "2006-01-02"

// MonthRange returns the inclusive date-only bounds of a month, for the
// store's range query.
func MonthRange(year int, month time.Month) (start, end string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(dateLayout), last.Format(dateLayout)
}

// BuildMonth buckets a month's trades into a full-week calendar grid. The
// grid starts on the Sunday on or before the 1st and ends on the Saturday on
// or after the last day. Trades match a cell by calendar day only; breakeven
// trades appear in the cell's list but are not counted as wins or losses.
func BuildMonth(year int, month time.Month, trades []models.Trade) []Week {
	byDay := make(map[string][]models.Trade)
	for _, t := range trades {
		byDay[t.Day()] = append(byDay[t.Day()], t)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	cursor := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, 6-int(last.Weekday()))

	var weeks []Week
	for !cursor.After(gridEnd) {
		var week Week
		for i := 0; i < 7; i++ {
			key := cursor.Format(dateLayout)
			day := Day{
				Date:    key,
				DayNum:  cursor.Day(),
				InMonth: cursor.Month() == month,
				Trades:  byDay[key],
			}
			for _, t := range day.Trades {
				day.PnL += t.PnL
				switch t.Result {
				case models.ResultWin:
					day.Wins++
				case models.ResultLoss:
					day.Losses++
				}
			}
			week[i] = day
			cursor = cursor.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}
