package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang-stock-predictor/internal/predictor/config"
	"golang-stock-predictor/internal/predictor/dto"
	"golang-stock-predictor/pkg/common"
	"golang-stock-predictor/pkg/logger"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// UpstreamRepository calls the external model service. A single attempt
// is made per request; callers fall back to the synthetic generator on
// failure.
type UpstreamRepository interface {
	Predict(ctx context.Context, req *dto.PredictRequest) (*dto.UpstreamPredictionResponse, error)
}

type upstreamRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	downMarker     *cache.Cache
	downCooldown   time.Duration
}

// NewUpstreamRepository creates the upstream model service client.
func NewUpstreamRepository(cfg *config.Config, log *logger.Logger) (UpstreamRepository, error) {
	timeout, err := time.ParseDuration(cfg.Upstream.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream timeout: %w", err)
	}

	downCooldown, err := time.ParseDuration(cfg.Upstream.DownCooldown)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream down_cooldown: %w", err)
	}

	secondsPerRequest := time.Minute / time.Duration(cfg.Upstream.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &upstreamRepository{
		client: &http.Client{
			Timeout: timeout,
		},
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		downMarker:     cache.New(downCooldown, 2*downCooldown),
		downCooldown:   downCooldown,
	}, nil
}

// Predict performs a single POST /predict against the upstream service.
// While the upstream is marked down, the call is skipped entirely so the
// caller fails fast to its fallback.
func (r *upstreamRepository) Predict(ctx context.Context, req *dto.PredictRequest) (*dto.UpstreamPredictionResponse, error) {
	if _, down := r.downMarker.Get(common.UpstreamDownMarkerKey); down {
		return nil, &dto.NetworkFailureError{Err: fmt.Errorf("upstream marked down for %s", r.downCooldown)}
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, &dto.NetworkFailureError{Err: fmt.Errorf("failed to wait for request limit: %w", err)}
	}

	body, err := json.Marshal(dto.UpstreamPredictRequest{
		Ticker:  req.Ticker,
		Horizon: req.Horizon,
		Model:   req.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal upstream request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Upstream.BaseURL+"/predict", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		r.downMarker.Set(common.UpstreamDownMarkerKey, time.Now(), cache.DefaultExpiration)
		r.logger.Warn("Upstream prediction request failed", logger.ErrorField(err), logger.Field("ticker", req.Ticker))
		return nil, &dto.NetworkFailureError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &dto.NetworkFailureError{Err: fmt.Errorf("failed to read upstream response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var upstreamErr dto.UpstreamErrorResponse
		_ = json.Unmarshal(respBody, &upstreamErr)
		if resp.StatusCode >= 500 {
			r.downMarker.Set(common.UpstreamDownMarkerKey, time.Now(), cache.DefaultExpiration)
		}
		return nil, &dto.NetworkFailureError{
			Err: fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, upstreamErr.Detail),
		}
	}

	var raw dto.UpstreamPredictionResponse
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, &dto.MalformedResponseError{Err: err}
	}

	return &raw, nil
}
