package service

import (
	"context"
	"fmt"
	"time"

	"golang-stock-predictor/internal/predictor/config"
	"golang-stock-predictor/internal/predictor/repository"
	"golang-stock-predictor/pkg/logger"

	"github.com/robfig/cron/v3"
)

// RetentionService deletes prediction history older than the configured
// age on a cron schedule.
type RetentionService interface {
	Start(ctx context.Context)
	RunOnce(ctx context.Context)
}

// NewRetentionService creates the history retention service.
func NewRetentionService(cfg *config.Config, historyRepo repository.PredictionHistoryRepository, log *logger.Logger) (RetentionService, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(cfg.Retention.CronExpression)
	if err != nil {
		return nil, fmt.Errorf("invalid retention cron expression: %w", err)
	}

	maxAge, err := time.ParseDuration(cfg.Retention.MaxAge)
	if err != nil {
		return nil, fmt.Errorf("invalid retention max_age: %w", err)
	}

	return &retentionService{
		historyRepo: historyRepo,
		logger:      log,
		schedule:    schedule,
		maxAge:      maxAge,
	}, nil
}

type retentionService struct {
	historyRepo repository.PredictionHistoryRepository
	logger      *logger.Logger
	schedule    cron.Schedule
	maxAge      time.Duration
}

// Start runs the retention loop until the context is canceled.
func (s *retentionService) Start(ctx context.Context) {
	s.logger.Info("Retention service started", logger.Field("max_age", s.maxAge.String()))
	for {
		next := s.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Retention service stopping")
			return
		case <-timer.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce deletes records older than the retention window.
func (s *retentionService) RunOnce(ctx context.Context) {
	cutoff := time.Now().Add(-s.maxAge)
	deleted, err := s.historyRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("Failed to prune prediction history", logger.ErrorField(err))
		return
	}
	if deleted > 0 {
		s.logger.Info("Pruned prediction history", logger.Field("deleted", deleted), logger.Field("cutoff", cutoff))
	}
}
