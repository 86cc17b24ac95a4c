package repository

import (
	"context"
	"time"

	"golang-stock-predictor/internal/entity"

	"gorm.io/gorm"
)

// PredictionHistoryRepository defines persistence for prediction results.
type PredictionHistoryRepository interface {
	Create(ctx context.Context, record *entity.PredictionRecord) error
	FindRecent(ctx context.Context, ticker string, limit int) ([]entity.PredictionRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// NewPredictionHistoryRepository creates a GORM-based history repository.
func NewPredictionHistoryRepository(db *gorm.DB) PredictionHistoryRepository {
	return &predictionHistoryRepository{db: db}
}

type predictionHistoryRepository struct {
	db *gorm.DB
}

// Create persists a prediction record.
func (r *predictionHistoryRepository) Create(ctx context.Context, record *entity.PredictionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindRecent returns the most recent records, optionally filtered by ticker.
func (r *predictionHistoryRepository) FindRecent(ctx context.Context, ticker string, limit int) ([]entity.PredictionRecord, error) {
	var records []entity.PredictionRecord
	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if ticker != "" {
		query = query.Where("ticker = ?", ticker)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteOlderThan hard-deletes records created before the cutoff and
// returns the number removed.
func (r *predictionHistoryRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&entity.PredictionRecord{})
	return result.RowsAffected, result.Error
}
