package service

import (
	"fmt"
	"math"
	"testing"

	"golang-stock-predictor/internal/predictor/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticGenerator_SeriesShape(t *testing.T) {
	horizons := []int{1, 3, 7, 14, 30}

	for _, horizon := range horizons {
		t.Run(fmt.Sprintf("horizon_%d", horizon), func(t *testing.T) {
			g := NewSyntheticGenerator(42)
			result := g.Generate("AAPL", horizon, dto.ModelKindLSTM)

			require.Len(t, result.Series, 30+horizon)

			historical := 0
			predicted := 0
			for i, p := range result.Series {
				assert.Equal(t, i+1, p.Day, "days must be strictly increasing from 1")
				if p.IsPredicted {
					predicted++
				} else {
					historical++
					assert.Zero(t, predicted, "historical points must precede predicted points")
				}
			}
			assert.Equal(t, 30, historical)
			assert.Equal(t, horizon, predicted)
		})
	}
}

func TestSyntheticGenerator_DerivedFields(t *testing.T) {
	g := NewSyntheticGenerator(7)

	for i := 0; i < 100; i++ {
		result := g.Generate("MSFT", 7, dto.ModelKindGRU)

		assert.InDelta(t, result.Change, result.PredictedPrice-result.CurrentPrice, 1e-9)
		assert.InDelta(t, result.ChangePercent, result.Change/result.CurrentPrice*100, 1e-9)
		assert.GreaterOrEqual(t, result.CurrentPrice, 100.0)
		assert.Less(t, result.CurrentPrice, 300.0)
		assert.GreaterOrEqual(t, result.Confidence, 85.0)
		assert.Less(t, result.Confidence, 100.0)
		assert.GreaterOrEqual(t, result.Change, -10.0)
		assert.Less(t, result.Change, 10.0)
	}
}

func TestSyntheticGenerator_MarksFallbackAndCurrent(t *testing.T) {
	g := NewSyntheticGenerator(1)
	result := g.Generate("TSLA", 3, dto.ModelKindEnsemble)

	assert.True(t, result.UsedFallback)
	assert.Equal(t, "TSLA", result.Ticker)
	assert.Equal(t, dto.ModelKindEnsemble, result.ModelKind)
	assert.Equal(t, 3, result.HorizonDays)

	currents := 0
	for _, p := range result.Series {
		if p.IsCurrent {
			currents++
			assert.Equal(t, 30, p.Day, "the last historical day is the current day")
			assert.False(t, p.IsPredicted)
		}
	}
	assert.Equal(t, 1, currents)
}

func TestSyntheticGenerator_NonPositiveHorizon(t *testing.T) {
	g := NewSyntheticGenerator(9)
	result := g.Generate("NVDA", 0, dto.ModelKindLSTM)

	require.Len(t, result.Series, 30)
	for _, p := range result.Series {
		assert.False(t, p.IsPredicted)
		assert.False(t, math.IsNaN(p.Price))
		assert.False(t, math.IsInf(p.Price, 0))
	}
}

func TestSyntheticGenerator_Deterministic(t *testing.T) {
	a := NewSyntheticGenerator(1234).Generate("AAPL", 7, dto.ModelKindLSTM)
	b := NewSyntheticGenerator(1234).Generate("AAPL", 7, dto.ModelKindLSTM)

	assert.Equal(t, a, b, "same seed must produce the same result")
}
