package dto

// ModelInfo describes one prediction model served by the system.
type ModelInfo struct {
	ID          ModelKind `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Accuracy    string    `json:"accuracy"`
}

// ModelsResponse lists the available prediction models.
type ModelsResponse struct {
	Models []ModelInfo `json:"models"`
}

// StockInfo is one suggested ticker.
type StockInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// PopularStocksResponse lists suggested tickers.
type PopularStocksResponse struct {
	Stocks []StockInfo `json:"stocks"`
}

// HealthResponse is the health check body.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
