package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-journal/models"
)

func TestAggregateScenario(t *testing.T) {
	t.Parallel()

	trades := []models.Trade{
		{Date: "2024-01-01", PnL: 100, Result: models.ResultWin, RiskRR: 2},
		{Date: "2024-01-02", PnL: -50, Result: models.ResultLoss, RiskRR: 3},
		{Date: "2024-01-03", PnL: 0, Result: models.ResultBreakeven, RiskRR: 1},
	}

	summary := Aggregate(trades)

	assert.Equal(t, 3, summary.Stats.TotalTrades)
	assert.InDelta(t, 50.0, summary.Stats.TotalPnL, 1e-9)
	// 1 win over 2 non-breakeven trades.
	assert.InDelta(t, 50.0, summary.Stats.Winrate, 1e-9)
	assert.InDelta(t, 2.0, summary.Stats.AvgRR, 1e-9)
	assert.Equal(t, 1, summary.Stats.Wins)
	assert.Equal(t, 1, summary.Stats.Losses)
	assert.Equal(t, 1, summary.Stats.BE)

	require.Len(t, summary.EquityCurve, 3)
	assert.InDelta(t, 100.0, summary.EquityCurve[0].PnL, 1e-9)
	assert.InDelta(t, 50.0, summary.EquityCurve[1].PnL, 1e-9)
	assert.InDelta(t, 50.0, summary.EquityCurve[2].PnL, 1e-9)
}

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()

	summary := Aggregate(nil)

	assert.Equal(t, 0, summary.Stats.TotalTrades)
	assert.Zero(t, summary.Stats.Winrate)
	assert.Zero(t, summary.Stats.TotalPnL)
	assert.Zero(t, summary.Stats.AvgRR)
	assert.Empty(t, summary.EquityCurve)

	require.Len(t, summary.Distribution, 3)
	for _, slice := range summary.Distribution {
		assert.Zero(t, slice.Value)
	}
}

func TestAggregateAllBreakeven(t *testing.T) {
	t.Parallel()

	trades := []models.Trade{
		{Result: models.ResultBreakeven},
		{Result: models.ResultBreakeven},
	}

	summary := Aggregate(trades)

	// Breakevens are excluded from the denominator; with nothing else the
	// rate must be exactly 0, not a division by zero.
	assert.Zero(t, summary.Stats.Winrate)
	assert.Equal(t, 2, summary.Stats.BE)
}

func TestAggregateCountsPartitionTotal(t *testing.T) {
	t.Parallel()

	trades := []models.Trade{
		{Result: models.ResultWin},
		{Result: models.ResultWin},
		{Result: models.ResultLoss},
		{Result: models.ResultBreakeven},
		{Result: models.ResultWin},
		{Result: models.ResultLoss},
	}

	s := Aggregate(trades).Stats
	assert.Equal(t, s.TotalTrades, s.Wins+s.Losses+s.BE)
	assert.Equal(t, 3, s.Wins)
	assert.Equal(t, 2, s.Losses)
	assert.Equal(t, 1, s.BE)
}

func TestAggregateEquityCurveIsPrefixSum(t *testing.T) {
	t.Parallel()

	trades := []models.Trade{
		{PnL: 10, Result: models.ResultWin},
		{PnL: -25.5, Result: models.ResultLoss},
		{PnL: 40, Result: models.ResultWin},
		{PnL: 0, Result: models.ResultBreakeven},
	}

	curve := Aggregate(trades).EquityCurve
	require.Len(t, curve, len(trades))

	var sum float64
	for i, point := range curve {
		sum += trades[i].PnL
		assert.Equal(t, i+1, point.Trade)
		assert.InDelta(t, sum, point.PnL, 1e-9)
	}
}

func TestAggregateWinWithNegativePnL(t *testing.T) {
	t.Parallel()

	// PnL sign is not constrained to match the result; the counts and sums
	// must still be taken as logged.
	trades := []models.Trade{
		{PnL: -5, Result: models.ResultWin},
	}

	s := Aggregate(trades).Stats
	assert.Equal(t, 1, s.Wins)
	assert.InDelta(t, -5.0, s.TotalPnL, 1e-9)
	assert.InDelta(t, 100.0, s.Winrate, 1e-9)
}
