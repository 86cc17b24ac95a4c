package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PredictionRecord is one persisted prediction result, including the full
// chart series as jsonb.
type PredictionRecord struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	RequestID      string         `json:"request_id" gorm:"type:uuid;not null"`
	Ticker         string         `json:"ticker" gorm:"not null;index"`
	CurrentPrice   float64        `json:"current_price"`
	PredictedPrice float64        `json:"predicted_price"`
	Change         float64        `json:"change"`
	ChangePercent  float64        `json:"change_percent"`
	Confidence     float64        `json:"confidence"`
	ModelKind      string         `json:"model_kind"`
	HorizonDays    int            `json:"horizon_days"`
	UsedFallback   bool           `json:"used_fallback"`
	Series         datatypes.JSON `json:"series" gorm:"type:jsonb"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at"`
}

func (PredictionRecord) TableName() string {
	return "prediction_records"
}
