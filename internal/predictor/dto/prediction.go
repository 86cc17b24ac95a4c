package dto

import (
	"time"
)

// ModelKind identifies one of the prediction models served upstream.
type ModelKind string

const (
	ModelKindLSTM     ModelKind = "lstm"
	ModelKindGRU      ModelKind = "gru"
	ModelKindEnsemble ModelKind = "ensemble"
)

// Valid reports whether the model kind is one of the served models.
func (m ModelKind) Valid() bool {
	switch m {
	case ModelKindLSTM, ModelKindGRU, ModelKindEnsemble:
		return true
	}
	return false
}

// PricePoint is one element of the displayed series. Within a series,
// days are unique and strictly increasing, at most one point is current,
// and every predicted day is greater than every historical day.
type PricePoint struct {
	Day         int     `json:"day"`
	Price       float64 `json:"price"`
	IsPredicted bool    `json:"is_predicted"`
	IsCurrent   bool    `json:"is_current"`
	Date        string  `json:"date,omitempty"`
}

// PredictRequest is the body of a prediction request.
type PredictRequest struct {
	Ticker  string `json:"ticker"`
	Horizon int    `json:"horizon"`
	Model   string `json:"model"`
}

// PredictionResult is the uniform prediction shape returned to clients,
// whether it came from the upstream model service or the local synthetic
// generator. A result is built fresh per request and never mutated.
type PredictionResult struct {
	RequestID      string       `json:"request_id,omitempty"`
	Ticker         string       `json:"ticker"`
	CurrentPrice   float64      `json:"current_price"`
	PredictedPrice float64      `json:"predicted_price"`
	Change         float64      `json:"change"`
	ChangePercent  float64      `json:"change_percent"`
	Confidence     float64      `json:"confidence"`
	ModelKind      ModelKind    `json:"model"`
	HorizonDays    int          `json:"horizon"`
	Series         []PricePoint `json:"series"`
	UsedFallback   bool         `json:"used_fallback"`
	Message        string       `json:"message,omitempty"`
	GeneratedAt    time.Time    `json:"generated_at,omitempty"`
}

// PredictionRecordResponse is one persisted prediction in history listings.
type PredictionRecordResponse struct {
	ID             uint         `json:"id"`
	RequestID      string       `json:"request_id"`
	Ticker         string       `json:"ticker"`
	CurrentPrice   float64      `json:"current_price"`
	PredictedPrice float64      `json:"predicted_price"`
	Change         float64      `json:"change"`
	ChangePercent  float64      `json:"change_percent"`
	Confidence     float64      `json:"confidence"`
	ModelKind      ModelKind    `json:"model"`
	HorizonDays    int          `json:"horizon"`
	UsedFallback   bool         `json:"used_fallback"`
	Series         []PricePoint `json:"series"`
	CreatedAt      time.Time    `json:"created_at"`
}

// ChartMarker selects the visual marker for a series point.
type ChartMarker string

const (
	ChartMarkerHistorical ChartMarker = "historical"
	ChartMarkerPredicted  ChartMarker = "predicted"
	ChartMarkerCurrent    ChartMarker = "current"
)

// ChartPoint is a series point annotated for rendering.
type ChartPoint struct {
	Day     int         `json:"day"`
	Price   float64     `json:"price"`
	Marker  ChartMarker `json:"marker"`
	Tooltip string      `json:"tooltip"`
}
