// Package analytics computes the journal's aggregate views: dashboard stats,
// equity curve and the monthly calendar grid. All functions are pure; the
// caller fetches trades and passes them in.
package analytics

import "trade-journal/models"

// Stats is the dashboard summary block.
type Stats struct {
	TotalTrades int     `json:"totalTrades"`
	Winrate     float64 `json:"winrate"`
	TotalPnL    float64 `json:"totalPnL"`
	AvgRR       float64 `json:"avgRR"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	BE          int     `json:"be"`
}

// Slice is one segment of the win/loss/breakeven distribution chart.
type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// EquityPoint is cumulative PnL after the Nth trade. The x-axis is trade
// sequence number, not calendar time.
type EquityPoint struct {
	Trade int     `json:"trade"`
	PnL   float64 `json:"pnl"`
}

// Summary is everything the dashboard renders.
type Summary struct {
	Stats        Stats         `json:"stats"`
	Distribution []Slice       `json:"distribution"`
	EquityCurve  []EquityPoint `json:"equityCurve"`
}

// Aggregate computes the dashboard summary for trades ordered ascending by
// date. Breakeven trades are excluded from the win-rate denominator: with
// nothing but breakevens the rate is 0, never a division by zero. Average RR
// is taken over all trades. An empty input yields all-zero stats and an empty
// curve.
func Aggregate(trades []models.Trade) Summary {
	s := Stats{TotalTrades: len(trades)}

	curve := make([]EquityPoint, 0, len(trades))
	var cumulative float64
	var totalRR float64

	for i, t := range trades {
		switch t.Result {
		case models.ResultWin:
			s.Wins++
		case models.ResultLoss:
			s.Losses++
		case models.ResultBreakeven:
			s.BE++
		}
		s.TotalPnL += t.PnL
		totalRR += t.RiskRR

		cumulative += t.PnL
		curve = append(curve, EquityPoint{Trade: i + 1, PnL: cumulative})
	}

	if s.TotalTrades > s.BE {
		s.Winrate = float64(s.Wins) / float64(s.TotalTrades-s.BE) * 100
	}
	if s.TotalTrades > 0 {
		s.AvgRR = totalRR / float64(s.TotalTrades)
	}

	return Summary{
		Stats: s,
		Distribution: []Slice{
			{Name: "wins", Value: s.Wins},
			{Name: "losses", Value: s.Losses},
			{Name: "be", Value: s.BE},
		},
		EquityCurve: curve,
	}
}
