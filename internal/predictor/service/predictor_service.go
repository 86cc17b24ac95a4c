package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"golang-stock-predictor/internal/entity"
	"golang-stock-predictor/internal/predictor/config"
	"golang-stock-predictor/internal/predictor/dto"
	"golang-stock-predictor/internal/predictor/repository"
	"golang-stock-predictor/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const maxTickerLength = 10

// PredictorService orchestrates a prediction request: validation, cache
// lookup, a single upstream attempt, normalization, and the silent
// fallback to the synthetic generator.
type PredictorService interface {
	Predict(ctx context.Context, req *dto.PredictRequest) (*dto.PredictionResult, error)
	LatestResult(ctx context.Context) (*dto.PredictionResult, bool)
	LatestChart(ctx context.Context) ([]dto.ChartPoint, bool)
	History(ctx context.Context, ticker string, limit int) ([]*dto.PredictionRecordResponse, error)
}

// NewPredictorService creates the predictor service.
func NewPredictorService(
	cfg *config.Config,
	upstreamRepo repository.UpstreamRepository,
	historyRepo repository.PredictionHistoryRepository,
	cacheRepo repository.PredictionCacheRepository,
	generator Generator,
	results *ResultStore,
	log *logger.Logger,
) (PredictorService, error) {
	var cacheTTL time.Duration
	if cfg.Cache.Enabled {
		ttl, err := time.ParseDuration(cfg.Cache.TTL)
		if err != nil {
			return nil, err
		}
		cacheTTL = ttl
	}

	return &predictorService{
		cfg:          cfg,
		upstreamRepo: upstreamRepo,
		historyRepo:  historyRepo,
		cacheRepo:    cacheRepo,
		generator:    generator,
		results:      results,
		logger:       log,
		cacheTTL:     cacheTTL,
	}, nil
}

type predictorService struct {
	cfg          *config.Config
	upstreamRepo repository.UpstreamRepository
	historyRepo  repository.PredictionHistoryRepository
	cacheRepo    repository.PredictionCacheRepository
	generator    Generator
	results      *ResultStore
	logger       *logger.Logger
	cacheTTL     time.Duration
}

// Predict runs one prediction request end to end. NetworkFailure and
// MalformedResponse from the upstream are swallowed into the synthetic
// fallback; only ValidationFailure reaches the caller as an error.
func (s *predictorService) Predict(ctx context.Context, req *dto.PredictRequest) (*dto.PredictionResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	model := dto.ModelKind(strings.ToLower(strings.TrimSpace(req.Model)))
	normalizedReq := &dto.PredictRequest{Ticker: ticker, Horizon: req.Horizon, Model: string(model)}

	seq := s.results.Issue()

	if s.cfg.Cache.Enabled {
		cached, err := s.cacheRepo.Get(ctx, ticker, req.Horizon, model)
		if err != nil {
			s.logger.Warn("Prediction cache lookup failed", logger.ErrorField(err), logger.Field("ticker", ticker))
		}
		if cached != nil {
			s.results.Publish(seq, cached)
			return cached, nil
		}
	}

	result, usedFallback := s.fetchOrFallback(ctx, normalizedReq, model)
	result.RequestID = uuid.NewString()
	result.GeneratedAt = time.Now()

	if accepted := s.results.Publish(seq, result); !accepted {
		s.logger.DebugContext(ctx, "Discarded stale prediction completion",
			logger.Field("seq", seq), logger.Field("ticker", ticker))
	}

	if !usedFallback && s.cfg.Cache.Enabled {
		if err := s.cacheRepo.Set(ctx, result, s.cacheTTL); err != nil {
			s.logger.Warn("Failed to cache prediction", logger.ErrorField(err), logger.Field("ticker", ticker))
		}
	}

	s.persist(ctx, result)

	return result, nil
}

// fetchOrFallback makes the single upstream attempt and converts any
// NetworkFailure or MalformedResponse into a synthetic result.
func (s *predictorService) fetchOrFallback(ctx context.Context, req *dto.PredictRequest, model dto.ModelKind) (*dto.PredictionResult, bool) {
	raw, err := s.upstreamRepo.Predict(ctx, req)
	if err == nil {
		var result *dto.PredictionResult
		result, err = NormalizeUpstream(raw)
		if err == nil {
			return NormalizeResult(result), false
		}
	}

	var netErr *dto.NetworkFailureError
	var malformedErr *dto.MalformedResponseError
	if !errors.As(err, &netErr) && !errors.As(err, &malformedErr) {
		// Unknown failures get the same treatment: the demo must not break.
		s.logger.Error("Unexpected upstream failure", logger.ErrorField(err), logger.Field("ticker", req.Ticker))
	}

	s.logger.Warn("Falling back to synthetic prediction",
		logger.ErrorField(err), logger.Field("ticker", req.Ticker), logger.Field("horizon", req.Horizon))
	return s.generator.Generate(req.Ticker, req.Horizon, model), true
}

// LatestResult reads the displayed-result slot.
func (s *predictorService) LatestResult(_ context.Context) (*dto.PredictionResult, bool) {
	return s.results.Latest()
}

// LatestChart annotates the displayed result's series for rendering.
func (s *predictorService) LatestChart(ctx context.Context) ([]dto.ChartPoint, bool) {
	result, ok := s.results.Latest()
	if !ok {
		return nil, false
	}
	return ChartPoints(result.Series), true
}

// History lists recent persisted predictions, newest first.
func (s *predictorService) History(ctx context.Context, ticker string, limit int) ([]*dto.PredictionRecordResponse, error) {
	if ticker != "" {
		ticker = strings.ToUpper(strings.TrimSpace(ticker))
	}
	records, err := s.historyRepo.FindRecent(ctx, ticker, limit)
	if err != nil {
		s.logger.Error("Failed to load prediction history", logger.ErrorField(err))
		return nil, err
	}

	responses := make([]*dto.PredictionRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, mapToRecordResponse(&records[i]))
	}
	return responses, nil
}

// persist writes the result to history. Persistence errors are logged
// and never fail the request.
func (s *predictorService) persist(ctx context.Context, result *dto.PredictionResult) {
	seriesBytes, err := json.Marshal(result.Series)
	if err != nil {
		s.logger.Error("Failed to marshal prediction series", logger.ErrorField(err))
		return
	}

	record := &entity.PredictionRecord{
		RequestID:      result.RequestID,
		Ticker:         result.Ticker,
		CurrentPrice:   result.CurrentPrice,
		PredictedPrice: result.PredictedPrice,
		Change:         result.Change,
		ChangePercent:  result.ChangePercent,
		Confidence:     result.Confidence,
		ModelKind:      string(result.ModelKind),
		HorizonDays:    result.HorizonDays,
		UsedFallback:   result.UsedFallback,
		Series:         datatypes.JSON(seriesBytes),
	}
	if err := s.historyRepo.Create(ctx, record); err != nil {
		s.logger.Error("Failed to persist prediction", logger.ErrorField(err), logger.Field("ticker", result.Ticker))
	}
}

// mapToRecordResponse maps an entity.PredictionRecord to its DTO.
func mapToRecordResponse(record *entity.PredictionRecord) *dto.PredictionRecordResponse {
	var series []dto.PricePoint
	_ = json.Unmarshal(record.Series, &series)

	return &dto.PredictionRecordResponse{
		ID:             record.ID,
		RequestID:      record.RequestID,
		Ticker:         record.Ticker,
		CurrentPrice:   record.CurrentPrice,
		PredictedPrice: record.PredictedPrice,
		Change:         record.Change,
		ChangePercent:  record.ChangePercent,
		Confidence:     record.Confidence,
		ModelKind:      dto.ModelKind(record.ModelKind),
		HorizonDays:    record.HorizonDays,
		UsedFallback:   record.UsedFallback,
		Series:         series,
		CreatedAt:      record.CreatedAt,
	}
}

// validateRequest enforces the request contract before anything is
// attempted: a plausible ticker, a positive horizon, a known model.
func validateRequest(req *dto.PredictRequest) error {
	ticker := strings.TrimSpace(req.Ticker)
	if ticker == "" {
		return &dto.ValidationFailureError{Field: "ticker", Reason: "must not be empty"}
	}
	if len(ticker) > maxTickerLength {
		return &dto.ValidationFailureError{Field: "ticker", Reason: "must be at most 10 characters"}
	}
	stripped := strings.NewReplacer(".", "", "-", "").Replace(ticker)
	if stripped == "" || !isAlphanumeric(stripped) {
		return &dto.ValidationFailureError{Field: "ticker", Reason: "must be alphanumeric"}
	}
	if req.Horizon <= 0 {
		return &dto.ValidationFailureError{Field: "horizon", Reason: "must be a positive integer"}
	}
	if !dto.ModelKind(strings.ToLower(strings.TrimSpace(req.Model))).Valid() {
		return &dto.ValidationFailureError{Field: "model", Reason: "must be one of lstm, gru, ensemble"}
	}
	return nil
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9') {
			return false
		}
	}
	return true
}
