package dto

// UpstreamSeriesPoint is one series item as returned by the upstream
// model service. Optional fields are pointers so absence is detectable.
type UpstreamSeriesPoint struct {
	Day       int     `json:"day"`
	Price     float64 `json:"price"`
	IsCurrent *bool   `json:"is_current,omitempty"`
	Date      *string `json:"date,omitempty"`
}

// UpstreamPredictionResponse is the raw success body of the upstream
// POST /predict call. Mandatory fields are pointers so the normalizer can
// reject responses that omit them.
type UpstreamPredictionResponse struct {
	Ticker         *string               `json:"ticker"`
	CurrentPrice   *float64              `json:"current_price"`
	PredictedPrice *float64              `json:"predicted_price"`
	Change         float64               `json:"change"`
	ChangePercent  float64               `json:"change_percent"`
	Confidence     float64               `json:"confidence"`
	Horizon        int                   `json:"horizon"`
	ModelType      string                `json:"model_type"`
	HistoricalData []UpstreamSeriesPoint `json:"historical_data"`
	PredictionData []UpstreamSeriesPoint `json:"prediction_data"`
	Message        string                `json:"message"`
}

// UpstreamPredictRequest is the body sent to the upstream model service.
type UpstreamPredictRequest struct {
	Ticker  string `json:"ticker"`
	Horizon int    `json:"horizon"`
	Model   string `json:"model"`
}

// UpstreamErrorResponse is the body of a non-2xx upstream response.
type UpstreamErrorResponse struct {
	Detail string `json:"detail"`
}
