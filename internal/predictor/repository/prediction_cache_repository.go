package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang-stock-predictor/internal/predictor/dto"
	"golang-stock-predictor/pkg/common"
	redisPkg "golang-stock-predictor/pkg/redis"

	"github.com/redis/go-redis/v9"
)

// PredictionCacheRepository caches normalized upstream results so rapid
// repeat requests for the same ticker do not hit the model service.
type PredictionCacheRepository interface {
	Get(ctx context.Context, ticker string, horizon int, model dto.ModelKind) (*dto.PredictionResult, error)
	Set(ctx context.Context, result *dto.PredictionResult, ttl time.Duration) error
}

// NewPredictionCacheRepository creates a Redis-backed prediction cache.
func NewPredictionCacheRepository(client *redisPkg.Client) PredictionCacheRepository {
	return &predictionCacheRepository{client: client}
}

type predictionCacheRepository struct {
	client *redisPkg.Client
}

// Get returns the cached result or (nil, nil) on a miss.
func (r *predictionCacheRepository) Get(ctx context.Context, ticker string, horizon int, model dto.ModelKind) (*dto.PredictionResult, error) {
	key := fmt.Sprintf(common.RedisKeyPredictionCache, ticker, horizon, model)
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read prediction cache: %w", err)
	}

	var result dto.PredictionResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to decode cached prediction: %w", err)
	}
	return &result, nil
}

// Set stores the result under its (ticker, horizon, model) key.
func (r *predictionCacheRepository) Set(ctx context.Context, result *dto.PredictionResult, ttl time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode prediction for cache: %w", err)
	}

	key := fmt.Sprintf(common.RedisKeyPredictionCache, result.Ticker, result.HorizonDays, result.ModelKind)
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write prediction cache: %w", err)
	}
	return nil
}
