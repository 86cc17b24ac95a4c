package service

import (
	"testing"

	"golang-stock-predictor/internal/predictor/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartPoints(t *testing.T) {
	series := []dto.PricePoint{
		{Day: 1, Price: 100},
		{Day: 2, Price: 101, IsCurrent: true, Date: "2026-08-21"},
		{Day: 3, Price: 102, IsPredicted: true},
	}

	points := ChartPoints(series)
	require.Len(t, points, 3)

	assert.Equal(t, dto.ChartMarkerHistorical, points[0].Marker)
	assert.Equal(t, "Day 1", points[0].Tooltip)

	assert.Equal(t, dto.ChartMarkerCurrent, points[1].Marker)
	assert.Equal(t, "2026-08-21 (Current)", points[1].Tooltip)

	assert.Equal(t, dto.ChartMarkerPredicted, points[2].Marker)
	assert.Equal(t, "Day 3 (Predicted)", points[2].Tooltip)
}

func TestChartPoints_CurrentWinsOverPredicted(t *testing.T) {
	points := ChartPoints([]dto.PricePoint{
		{Day: 5, Price: 110, IsCurrent: true, IsPredicted: true},
	})

	require.Len(t, points, 1)
	assert.Equal(t, dto.ChartMarkerCurrent, points[0].Marker)
	assert.Equal(t, "Day 5 (Current)", points[0].Tooltip)
}

func TestChartPoints_Empty(t *testing.T) {
	assert.Empty(t, ChartPoints(nil))
}
