package service

import (
	"testing"

	"golang-stock-predictor/internal/predictor/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func upstreamFixture() *dto.UpstreamPredictionResponse {
	return &dto.UpstreamPredictionResponse{
		Ticker:         ptr("AAPL"),
		CurrentPrice:   ptr(150.0),
		PredictedPrice: ptr(160.0),
		Change:         10,
		ChangePercent:  6.67,
		Confidence:     90,
		Horizon:        3,
		ModelType:      "LSTM",
		HistoricalData: []dto.UpstreamSeriesPoint{
			{Day: 1, Price: 148},
		},
		PredictionData: []dto.UpstreamSeriesPoint{
			{Day: 2, Price: 155},
			{Day: 3, Price: 158},
			{Day: 4, Price: 160},
		},
	}
}

func TestNormalizeUpstream(t *testing.T) {
	result, err := NormalizeUpstream(upstreamFixture())
	require.NoError(t, err)

	assert.Equal(t, "AAPL", result.Ticker)
	assert.Equal(t, 150.0, result.CurrentPrice)
	assert.Equal(t, 160.0, result.PredictedPrice)
	assert.Equal(t, 10.0, result.Change)
	assert.Equal(t, 6.67, result.ChangePercent)
	assert.Equal(t, dto.ModelKindLSTM, result.ModelKind)
	assert.Equal(t, 3, result.HorizonDays)
	assert.False(t, result.UsedFallback)

	require.Len(t, result.Series, 4)
	assert.False(t, result.Series[0].IsPredicted)
	for _, p := range result.Series[1:] {
		assert.True(t, p.IsPredicted)
	}
}

func TestNormalizeUpstream_OptionalFieldDefaults(t *testing.T) {
	raw := upstreamFixture()
	raw.HistoricalData = []dto.UpstreamSeriesPoint{
		{Day: 1, Price: 148, IsCurrent: ptr(true), Date: ptr("2026-08-21")},
		{Day: 2, Price: 149},
	}

	result, err := NormalizeUpstream(raw)
	require.NoError(t, err)

	assert.True(t, result.Series[0].IsCurrent)
	assert.Equal(t, "2026-08-21", result.Series[0].Date)
	assert.False(t, result.Series[1].IsCurrent)
	assert.Empty(t, result.Series[1].Date)
}

func TestNormalizeUpstream_MissingMandatoryFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(raw *dto.UpstreamPredictionResponse)
		field  string
	}{
		{
			name:   "missing ticker",
			mutate: func(raw *dto.UpstreamPredictionResponse) { raw.Ticker = nil },
			field:  "ticker",
		},
		{
			name:   "blank ticker",
			mutate: func(raw *dto.UpstreamPredictionResponse) { raw.Ticker = ptr("  ") },
			field:  "ticker",
		},
		{
			name:   "missing current_price",
			mutate: func(raw *dto.UpstreamPredictionResponse) { raw.CurrentPrice = nil },
			field:  "current_price",
		},
		{
			name:   "missing predicted_price",
			mutate: func(raw *dto.UpstreamPredictionResponse) { raw.PredictedPrice = nil },
			field:  "predicted_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := upstreamFixture()
			tt.mutate(raw)

			result, err := NormalizeUpstream(raw)
			assert.Nil(t, result, "no partial result on malformed input")

			var malformed *dto.MalformedResponseError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.field, malformed.Field)
		})
	}
}

func TestNormalizeResult_Idempotent(t *testing.T) {
	normalized, err := NormalizeUpstream(upstreamFixture())
	require.NoError(t, err)

	once := NormalizeResult(normalized)
	assert.Equal(t, normalized, once)

	twice := NormalizeResult(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeResult_Defaults(t *testing.T) {
	result := NormalizeResult(&dto.PredictionResult{Ticker: " aapl ", ModelKind: "LSTM"})

	assert.Equal(t, "AAPL", result.Ticker)
	assert.Equal(t, dto.ModelKindLSTM, result.ModelKind)
	assert.NotNil(t, result.Series)
	assert.Empty(t, result.Series)
}
