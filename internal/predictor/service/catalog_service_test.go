package service

import (
	"context"
	"testing"

	"golang-stock-predictor/internal/predictor/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Models(t *testing.T) {
	models := NewCatalogService().Models(context.Background())
	require.Len(t, models, 3)

	kinds := make(map[dto.ModelKind]dto.ModelInfo, len(models))
	for _, m := range models {
		assert.True(t, m.ID.Valid())
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Description)
		kinds[m.ID] = m
	}

	assert.Equal(t, "87.5%", kinds[dto.ModelKindLSTM].Accuracy)
	assert.Equal(t, "85.2%", kinds[dto.ModelKindGRU].Accuracy)
	assert.Equal(t, "92.1%", kinds[dto.ModelKindEnsemble].Accuracy)
}

func TestCatalogService_PopularStocks(t *testing.T) {
	stocks := NewCatalogService().PopularStocks(context.Background())
	require.Len(t, stocks, 8)

	seen := make(map[string]bool, len(stocks))
	for _, s := range stocks {
		assert.NotEmpty(t, s.Name)
		assert.False(t, seen[s.Symbol], "symbols must be unique")
		seen[s.Symbol] = true
	}
	assert.True(t, seen["AAPL"])
}
