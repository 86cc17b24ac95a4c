package service

import (
	"fmt"

	"golang-stock-predictor/internal/predictor/dto"
)

// ChartPoints annotates a series for rendering. Current points get the
// highlighted marker (winning over predicted), predicted points their own
// style, everything else the plain historical marker.
func ChartPoints(series []dto.PricePoint) []dto.ChartPoint {
	points := make([]dto.ChartPoint, 0, len(series))
	for _, p := range series {
		points = append(points, dto.ChartPoint{
			Day:     p.Day,
			Price:   p.Price,
			Marker:  markerFor(p),
			Tooltip: tooltipFor(p),
		})
	}
	return points
}

func markerFor(p dto.PricePoint) dto.ChartMarker {
	switch {
	case p.IsCurrent:
		return dto.ChartMarkerCurrent
	case p.IsPredicted:
		return dto.ChartMarkerPredicted
	default:
		return dto.ChartMarkerHistorical
	}
}

func tooltipFor(p dto.PricePoint) string {
	label := p.Date
	if label == "" {
		label = fmt.Sprintf("Day %d", p.Day)
	}
	switch {
	case p.IsCurrent:
		return label + " (Current)"
	case p.IsPredicted:
		return label + " (Predicted)"
	default:
		return label
	}
}
