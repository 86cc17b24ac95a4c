package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang-stock-predictor/internal/predictor/config"
	"golang-stock-predictor/internal/predictor/dto"
	"golang-stock-predictor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpstreamRepository(t *testing.T, baseURL string) UpstreamRepository {
	t.Helper()

	log, err := logger.New("error", "json")
	require.NoError(t, err)

	repo, err := NewUpstreamRepository(&config.Config{
		Upstream: config.Upstream{
			BaseURL:             baseURL,
			Timeout:             "2s",
			MaxRequestPerMinute: 60000,
			DownCooldown:        "1m",
		},
	}, log)
	require.NoError(t, err)
	return repo
}

func predictRequest() *dto.PredictRequest {
	return &dto.PredictRequest{Ticker: "AAPL", Horizon: 7, Model: "lstm"}
}

func TestUpstreamRepository_Predict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req dto.UpstreamPredictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "AAPL", req.Ticker)
		assert.Equal(t, 7, req.Horizon)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"ticker":          "AAPL",
			"current_price":   150.0,
			"predicted_price": 160.0,
			"horizon":         7,
		})
	}))
	defer server.Close()

	repo := newUpstreamRepository(t, server.URL)

	raw, err := repo.Predict(context.Background(), predictRequest())
	require.NoError(t, err)
	require.NotNil(t, raw.Ticker)
	assert.Equal(t, "AAPL", *raw.Ticker)
	require.NotNil(t, raw.CurrentPrice)
	assert.Equal(t, 150.0, *raw.CurrentPrice)
}

func TestUpstreamRepository_ServerErrorMarksDown(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(dto.UpstreamErrorResponse{Detail: "model exploded"})
	}))
	defer server.Close()

	repo := newUpstreamRepository(t, server.URL)

	_, err := repo.Predict(context.Background(), predictRequest())
	var netErr *dto.NetworkFailureError
	require.ErrorAs(t, err, &netErr)
	assert.Contains(t, netErr.Error(), "model exploded")

	// The second attempt fails fast without touching the server.
	_, err = repo.Predict(context.Background(), predictRequest())
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, 1, hits)
}

func TestUpstreamRepository_ClientErrorDoesNotMarkDown(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(dto.UpstreamErrorResponse{Detail: "unknown ticker"})
	}))
	defer server.Close()

	repo := newUpstreamRepository(t, server.URL)

	for i := 0; i < 2; i++ {
		_, err := repo.Predict(context.Background(), predictRequest())
		var netErr *dto.NetworkFailureError
		require.ErrorAs(t, err, &netErr)
	}
	assert.Equal(t, 2, hits)
}

func TestUpstreamRepository_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	repo := newUpstreamRepository(t, server.URL)

	_, err := repo.Predict(context.Background(), predictRequest())
	var malformedErr *dto.MalformedResponseError
	require.ErrorAs(t, err, &malformedErr)
}

func TestUpstreamRepository_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	repo := newUpstreamRepository(t, server.URL)

	_, err := repo.Predict(context.Background(), predictRequest())
	var netErr *dto.NetworkFailureError
	require.ErrorAs(t, err, &netErr)
}
