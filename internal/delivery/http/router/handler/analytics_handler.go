package handler

import (
	"net/http"

	"leasing/internal/delivery/http/response"
	"leasing/internal/usecase"

	"github.com/labstack/echo/v4"
)

const defaultTrendDays = 30

// AnalyticsHandler serves the analytics endpoints
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(analyticsUC usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

// GetDashboard handles the dashboard metrics
func (h *AnalyticsHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.analyticsUC.Dashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

// GetTrends handles daily average listing prices
func (h *AnalyticsHandler) GetTrends(c echo.Context) error {
	days := defaultTrendDays
	if err := echo.QueryParamsBinder(c).Int("days", &days).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "days must be an integer")
	}

	trends, err := h.analyticsUC.PriceTrends(c.Request().Context(), days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"days":   days,
		"trends": trends,
	})
}

// GetDistribution handles the bedroom, status and city distributions
func (h *AnalyticsHandler) GetDistribution(c echo.Context) error {
	distribution, err := h.analyticsUC.Distribution(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, distribution)
}

// GetPerformance handles the performance KPIs
func (h *AnalyticsHandler) GetPerformance(c echo.Context) error {
	performance, err := h.analyticsUC.Performance(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, performance)
}
