package service

import (
	"context"

	"golang-stock-predictor/internal/predictor/dto"
)

// CatalogService serves the static model and ticker catalogs.
type CatalogService interface {
	Models(ctx context.Context) []dto.ModelInfo
	PopularStocks(ctx context.Context) []dto.StockInfo
}

// NewCatalogService creates the catalog service.
func NewCatalogService() CatalogService {
	return &catalogService{}
}

type catalogService struct{}

// Models lists the prediction models served by the system.
func (s *catalogService) Models(_ context.Context) []dto.ModelInfo {
	return []dto.ModelInfo{
		{
			ID:          dto.ModelKindLSTM,
			Name:        "LSTM (Long Short-Term Memory)",
			Description: "Long Short-Term Memory networks excel at capturing long-range dependencies in sequential data",
			Accuracy:    "87.5%",
		},
		{
			ID:          dto.ModelKindGRU,
			Name:        "GRU (Gated Recurrent Unit)",
			Description: "Gated Recurrent Units offer similar performance to LSTM with simplified architecture",
			Accuracy:    "85.2%",
		},
		{
			ID:          dto.ModelKindEnsemble,
			Name:        "Ensemble (LSTM + GRU + Transformer)",
			Description: "Combines LSTM, GRU, and transformer models for maximum accuracy",
			Accuracy:    "92.1%",
		},
	}
}

// PopularStocks lists suggested tickers for the search box.
func (s *catalogService) PopularStocks(_ context.Context) []dto.StockInfo {
	return []dto.StockInfo{
		{Symbol: "AAPL", Name: "Apple Inc."},
		{Symbol: "MSFT", Name: "Microsoft Corporation"},
		{Symbol: "GOOGL", Name: "Alphabet Inc."},
		{Symbol: "AMZN", Name: "Amazon.com Inc."},
		{Symbol: "TSLA", Name: "Tesla Inc."},
		{Symbol: "NVDA", Name: "NVIDIA Corporation"},
		{Symbol: "META", Name: "Meta Platforms Inc."},
		{Symbol: "NFLX", Name: "Netflix Inc."},
	}
}
