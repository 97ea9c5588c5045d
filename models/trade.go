package models

import (
	"strings"
	"time"
)

// Session is the market session a trade was taken in.
type Session string

const (
	SessionAsia   Session = "Asia"
	SessionLondon Session = "London"
	SessionNY     Session = "NY"
)

// Direction of the position.
type Direction string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

// Result is the trade outcome. Breakeven trades are excluded from the
// win-rate denominator, see analytics.Aggregate.
type Result string

const (
	ResultWin       Result = "win"
	ResultLoss      Result = "loss"
	ResultBreakeven Result = "BE"
)

// Trade is one logged discretionary trade. Date is a calendar date string
// ("2006-01-02"); the journal has no time-of-day semantics. PnL sign is not
// required to match Result: a "win" with negative PnL is accepted as logged.
type Trade struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	UserID           string    `json:"user_id" bson:"user_id"`
	Date             string    `json:"date" bson:"date" binding:"required,calendardate"`
	Market           string    `json:"market" bson:"market" binding:"required"`
	Session          Session   `json:"session" bson:"session" binding:"required,oneof=Asia London NY"`
	Direction        Direction `json:"direction" bson:"direction" binding:"required,oneof=long short"`
	EntryPrice       float64   `json:"entry_price" bson:"entry_price"`
	StopLoss         float64   `json:"stop_loss" bson:"stop_loss"`
	TakeProfit       float64   `json:"take_profit" bson:"take_profit"`
	RiskRR           float64   `json:"risk_rr" bson:"risk_rr"`
	Result           Result    `json:"result" bson:"result" binding:"required,oneof=win loss BE"`
	PnL              float64   `json:"pnl" bson:"pnl"`
	Model            string    `json:"model" bson:"model"`
	ExecutionQuality int       `json:"execution_quality" bson:"execution_quality" binding:"required,min=1,max=5"`
	EmotionalState   string    `json:"emotional_state" bson:"emotional_state"`
	Notes            string    `json:"notes,omitempty" bson:"notes,omitempty"`
	AIAnalysis       string    `json:"ai_analysis,omitempty" bson:"ai_analysis,omitempty"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// Normalize cleans up free-form fields before persisting. Market symbols are
// stored uppercase so NAS100 and nas100 land in the same bucket.
func (t *Trade) Normalize() {
	t.Market = strings.ToUpper(strings.TrimSpace(t.Market))
	t.Model = strings.TrimSpace(t.Model)
	t.EmotionalState = strings.TrimSpace(t.EmotionalState)
}

// Day returns the calendar-day portion of the trade date. Dates are stored
// date-only, but an ISO datetime that slipped in still buckets by its day.
func (t Trade) Day() string {
	if len(t.Date) > 10 {
		return t.Date[:10]
	}
	return t.Date
}
