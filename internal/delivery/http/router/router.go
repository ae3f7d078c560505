// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"leasing/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SystemHandler    *handler.SystemHandler
	UnitHandler      *handler.UnitHandler
	LeadHandler      *handler.LeadHandler
	AnalyticsHandler *handler.AnalyticsHandler
	StreamHandler    *handler.StreamHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	systemHandler    *handler.SystemHandler
	unitHandler      *handler.UnitHandler
	leadHandler      *handler.LeadHandler
	analyticsHandler *handler.AnalyticsHandler
	streamHandler    *handler.StreamHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		systemHandler:    params.SystemHandler,
		unitHandler:      params.UnitHandler,
		leadHandler:      params.LeadHandler,
		analyticsHandler: params.AnalyticsHandler,
		streamHandler:    params.StreamHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.systemHandler.Root)
	e.GET("/health", r.systemHandler.HealthCheck)

	// Live observers
	e.GET("/ws/units", r.streamHandler.WebSocket)
	e.GET("/sse/units", r.streamHandler.ServerSentEvents)

	api := e.Group("/api")

	unitsGroup := api.Group("/units")
	{
		unitsGroup.GET("", r.unitHandler.ListUnits)
		unitsGroup.POST("", r.unitHandler.CreateUnit)
		unitsGroup.GET("/:id", r.unitHandler.GetUnit)
		unitsGroup.PATCH("/:id", r.unitHandler.UpdateUnit)
		unitsGroup.DELETE("/:id", r.unitHandler.DeleteUnit)
		unitsGroup.GET("/:id/qrcode", r.unitHandler.GetListingQR)
	}

	leadsGroup := api.Group("/leads")
	{
		leadsGroup.GET("/score/:id", r.leadHandler.GetScore)
		leadsGroup.POST("/score/:id/recalculate", r.leadHandler.RecalculateUnit)
		leadsGroup.POST("/recalculate", r.leadHandler.RecalculateAll)
		leadsGroup.GET("/prioritized", r.leadHandler.GetPrioritized)
	}

	analyticsGroup := api.Group("/analytics")
	{
		analyticsGroup.GET("", r.analyticsHandler.GetDashboard)
		analyticsGroup.GET("/trends", r.analyticsHandler.GetTrends)
		analyticsGroup.GET("/distribution", r.analyticsHandler.GetDistribution)
		analyticsGroup.GET("/performance", r.analyticsHandler.GetPerformance)
	}
}
