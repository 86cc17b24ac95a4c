package http

import (
	"errors"
	"net/http"
	"strconv"

	"golang-stock-predictor/internal/predictor/dto"
	"golang-stock-predictor/internal/predictor/service"
	"golang-stock-predictor/pkg/logger"

	"github.com/labstack/echo/v4"
)

const defaultHistoryLimit = 20

// PredictionHandler handles HTTP requests for predictions.
type PredictionHandler struct {
	predictorService service.PredictorService
	logger           *logger.Logger
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(predictorService service.PredictorService, logger *logger.Logger) *PredictionHandler {
	return &PredictionHandler{predictorService: predictorService, logger: logger}
}

// RegisterRoutes registers the prediction routes to the Echo group.
func (h *PredictionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/predict", h.Predict)
	g.GET("/predictions", h.History)
	g.GET("/predictions/latest", h.Latest)
	g.GET("/predictions/latest/chart", h.LatestChart)
}

// Predict godoc
// @Summary Predict a stock price
// @Description Run a prediction for a ticker over a horizon with the selected model
// @Tags predictions
// @Accept  json
// @Produce  json
// @Param   request  body    dto.PredictRequest   true    "Prediction request"
// @Success 200 {object} dto.PredictionResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /predict [post]
func (h *PredictionHandler) Predict(c echo.Context) error {
	var req dto.PredictRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	result, err := h.predictorService.Predict(c.Request().Context(), &req)
	if err != nil {
		var validationErr *dto.ValidationFailureError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationErr.Error()})
		}
		h.logger.Error("Prediction failed", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to run prediction"})
	}

	return c.JSON(http.StatusOK, result)
}

// History godoc
// @Summary List recent predictions
// @Description List persisted prediction results, newest first
// @Tags predictions
// @Produce  json
// @Param   ticker  query   string  false   "Filter by ticker"
// @Param   limit   query   int     false   "Maximum records to return"
// @Success 200 {array} dto.PredictionRecordResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /predictions [get]
func (h *PredictionHandler) History(c echo.Context) error {
	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid limit"})
		}
		limit = parsed
	}

	records, err := h.predictorService.History(c.Request().Context(), c.QueryParam("ticker"), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load prediction history"})
	}

	return c.JSON(http.StatusOK, records)
}

// Latest godoc
// @Summary Get the displayed prediction
// @Description Get the most recently completed, non-stale prediction result
// @Tags predictions
// @Produce  json
// @Success 200 {object} dto.PredictionResult
// @Failure 404 {object} dto.ErrorResponse
// @Router /predictions/latest [get]
func (h *PredictionHandler) Latest(c echo.Context) error {
	result, ok := h.predictorService.LatestResult(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "No prediction available yet"})
	}
	return c.JSON(http.StatusOK, result)
}

// LatestChart godoc
// @Summary Get the displayed prediction as chart points
// @Description Get the displayed prediction's series annotated with markers and tooltips
// @Tags predictions
// @Produce  json
// @Success 200 {array} dto.ChartPoint
// @Failure 404 {object} dto.ErrorResponse
// @Router /predictions/latest/chart [get]
func (h *PredictionHandler) LatestChart(c echo.Context) error {
	points, ok := h.predictorService.LatestChart(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "No prediction available yet"})
	}
	return c.JSON(http.StatusOK, points)
}
