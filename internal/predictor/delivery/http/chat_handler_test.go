package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"golang-stock-predictor/internal/predictor/dto"
	"golang-stock-predictor/internal/predictor/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHandler_Chat(t *testing.T) {
	handler := NewChatHandler(service.NewChatService(newTestLogger(t)))

	rec := doRequest(handler.Chat, http.MethodPost, "/api/chat", `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "greeting", resp.Intent)
	assert.NotEmpty(t, resp.Reply)
}

func TestChatHandler_Chat_EmptyMessage(t *testing.T) {
	handler := NewChatHandler(service.NewChatService(newTestLogger(t)))

	for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `{}`} {
		rec := doRequest(handler.Chat, http.MethodPost, "/api/chat", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestCatalogHandler_Models(t *testing.T) {
	handler := NewCatalogHandler(service.NewCatalogService())

	rec := doRequest(handler.Models, http.MethodGet, "/api/models", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ModelsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Models, 3)
}

func TestCatalogHandler_PopularStocks(t *testing.T) {
	handler := NewCatalogHandler(service.NewCatalogService())

	rec := doRequest(handler.PopularStocks, http.MethodGet, "/api/stocks/popular", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.PopularStocksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Stocks, 8)
}

func TestHealthHandler_Health(t *testing.T) {
	handler := NewHealthHandler()

	rec := doRequest(handler.Health, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
}
