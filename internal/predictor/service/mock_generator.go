package service

import (
	"math"
	"math/rand"
	"sync"

	"golang-stock-predictor/internal/predictor/dto"
)

const historicalDays = 30

// Generator produces a synthetic prediction when the upstream model
// service is unavailable.
type Generator interface {
	Generate(ticker string, horizonDays int, model dto.ModelKind) *dto.PredictionResult
}

// SyntheticGenerator builds plausible-looking prediction results from a
// seeded random source so the interface stays demonstrable offline.
type SyntheticGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSyntheticGenerator creates a generator around the given seed.
func NewSyntheticGenerator(seed int64) *SyntheticGenerator {
	return &SyntheticGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Generate produces 30 historical points followed by horizonDays
// predicted points with strictly increasing days starting at 1. A
// non-positive horizon yields an empty predicted segment. The model kind
// is descriptive only and does not affect the numbers.
func (g *SyntheticGenerator) Generate(ticker string, horizonDays int, model dto.ModelKind) *dto.PredictionResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	currentPrice := g.uniform(100, 300)
	change := g.uniform(-10, 10)
	predictedPrice := currentPrice + change
	confidence := g.uniform(85, 100)

	series := make([]dto.PricePoint, 0, historicalDays+max(horizonDays, 0))
	for i := 0; i < historicalDays; i++ {
		price := currentPrice - g.uniform(-10, 10) + 5*math.Sin(float64(i)/5) + g.uniform(-1.5, 1.5)
		series = append(series, dto.PricePoint{
			Day:       i + 1,
			Price:     price,
			IsCurrent: i == historicalDays-1,
		})
	}

	if horizonDays > 0 {
		trend := change / float64(horizonDays)
		for i := 0; i < horizonDays; i++ {
			price := currentPrice + trend*float64(i+1) + g.uniform(-1, 1)
			series = append(series, dto.PricePoint{
				Day:         historicalDays + i + 1,
				Price:       price,
				IsPredicted: true,
			})
		}
	}

	return &dto.PredictionResult{
		Ticker:         ticker,
		CurrentPrice:   currentPrice,
		PredictedPrice: predictedPrice,
		Change:         change,
		ChangePercent:  change / currentPrice * 100,
		Confidence:     confidence,
		ModelKind:      model,
		HorizonDays:    horizonDays,
		Series:         series,
		UsedFallback:   true,
	}
}

// uniform draws from [min, max).
func (g *SyntheticGenerator) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}
