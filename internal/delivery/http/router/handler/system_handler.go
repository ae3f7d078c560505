package handler

import (
	"net/http"

	"leasing/config"
	"leasing/internal/delivery/http/response"
	"leasing/internal/domain/constants"
	"leasing/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SystemHandler serves service info and health
type SystemHandler struct {
	streamUC    usecase.StreamUsecase
	serviceName string
}

// NewSystemHandler is the constructor for SystemHandler
func NewSystemHandler(streamUC usecase.StreamUsecase, cfg *config.Config) *SystemHandler {
	serviceName := cfg.Env.ServiceName
	if serviceName == "" {
		serviceName = constants.ServiceName
	}

	return &SystemHandler{
		streamUC:    streamUC,
		serviceName: serviceName,
	}
}

// Root reports that the service is running
func (h *SystemHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"service":            h.serviceName,
		"status":             "running",
		"active_connections": h.streamUC.ActiveObservers(),
	})
}

// HealthCheck pings the store and reports observer count
func (h *SystemHandler) HealthCheck(c echo.Context) error {
	status := h.streamUC.Status(c.Request().Context())
	if !status.StoreHealthy {
		return response.ServiceUnavailable(c, "STORE_UNAVAILABLE", "Service unhealthy")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"status":                "healthy",
		"store":                 "connected",
		"websocket_connections": status.ActiveObservers,
	})
}
