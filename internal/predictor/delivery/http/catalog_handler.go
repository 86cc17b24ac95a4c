package http

import (
	"net/http"

	"golang-stock-predictor/internal/predictor/dto"
	"golang-stock-predictor/internal/predictor/service"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the model and ticker catalogs.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// RegisterRoutes registers the catalog routes to the Echo group.
func (h *CatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/models", h.Models)
	g.GET("/stocks/popular", h.PopularStocks)
}

// Models godoc
// @Summary List available prediction models
// @Tags catalog
// @Produce  json
// @Success 200 {object} dto.ModelsResponse
// @Router /models [get]
func (h *CatalogHandler) Models(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ModelsResponse{
		Models: h.catalogService.Models(c.Request().Context()),
	})
}

// PopularStocks godoc
// @Summary List popular stock suggestions
// @Tags catalog
// @Produce  json
// @Success 200 {object} dto.PopularStocksResponse
// @Router /stocks/popular [get]
func (h *CatalogHandler) PopularStocks(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.PopularStocksResponse{
		Stocks: h.catalogService.PopularStocks(c.Request().Context()),
	})
}
