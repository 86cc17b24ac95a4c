package service

import (
	"strings"

	"golang-stock-predictor/internal/predictor/dto"
)

// NormalizeUpstream reshapes a raw upstream response into the uniform
// PredictionResult. It only renames and defaults fields; no numbers are
// recomputed. Missing mandatory fields yield a MalformedResponseError
// and no partial result.
func NormalizeUpstream(raw *dto.UpstreamPredictionResponse) (*dto.PredictionResult, error) {
	if raw.Ticker == nil || strings.TrimSpace(*raw.Ticker) == "" {
		return nil, &dto.MalformedResponseError{Field: "ticker"}
	}
	if raw.CurrentPrice == nil {
		return nil, &dto.MalformedResponseError{Field: "current_price"}
	}
	if raw.PredictedPrice == nil {
		return nil, &dto.MalformedResponseError{Field: "predicted_price"}
	}

	series := make([]dto.PricePoint, 0, len(raw.HistoricalData)+len(raw.PredictionData))
	for _, p := range raw.HistoricalData {
		series = append(series, normalizePoint(p, false))
	}
	for _, p := range raw.PredictionData {
		series = append(series, normalizePoint(p, true))
	}

	result := &dto.PredictionResult{
		Ticker:         strings.ToUpper(strings.TrimSpace(*raw.Ticker)),
		CurrentPrice:   *raw.CurrentPrice,
		PredictedPrice: *raw.PredictedPrice,
		Change:         raw.Change,
		ChangePercent:  raw.ChangePercent,
		Confidence:     raw.Confidence,
		ModelKind:      dto.ModelKind(strings.ToLower(raw.ModelType)),
		HorizonDays:    raw.Horizon,
		Series:         series,
		Message:        raw.Message,
	}
	return result, nil
}

// NormalizeResult applies the same defaulting to an already-uniform
// result. It is idempotent: a normalized result passes through equal.
func NormalizeResult(result *dto.PredictionResult) *dto.PredictionResult {
	normalized := *result
	normalized.Ticker = strings.ToUpper(strings.TrimSpace(normalized.Ticker))
	normalized.ModelKind = dto.ModelKind(strings.ToLower(string(normalized.ModelKind)))
	if normalized.Series == nil {
		normalized.Series = []dto.PricePoint{}
	}
	return &normalized
}

func normalizePoint(p dto.UpstreamSeriesPoint, predicted bool) dto.PricePoint {
	point := dto.PricePoint{
		Day:         p.Day,
		Price:       p.Price,
		IsPredicted: predicted,
	}
	if p.IsCurrent != nil {
		point.IsCurrent = *p.IsCurrent
	}
	if p.Date != nil {
		point.Date = *p.Date
	}
	return point
}
