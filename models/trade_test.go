package models

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeNormalize(t *testing.T) {
	t.Parallel()

	trade := Trade{
		Market:         "  nas100 ",
		Model:          " OB Tap ",
		EmotionalState: " Calm ",
	}
	trade.Normalize()

	assert.Equal(t, "NAS100", trade.Market)
	assert.Equal(t, "OB Tap", trade.Model)
	assert.Equal(t, "Calm", trade.EmotionalState)
}

func TestTradeDay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-01-15", Trade{Date: "2024-01-15"}.Day())
	assert.Equal(t, "2024-01-15", Trade{Date: "2024-01-15T13:45:00Z"}.Day())
}

func TestCalendarDateValidation(t *testing.T) {
	t.Parallel()

	v := validator.New()
	require.NoError(t, RegisterValidators(v))

	assert.NoError(t, v.Var("2024-01-31", "calendardate"))
	assert.Error(t, v.Var("31/01/2024", "calendardate"))
	assert.Error(t, v.Var("2024-13-01", "calendardate"))
	assert.Error(t, v.Var("", "calendardate"))
}
