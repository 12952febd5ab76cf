// Package router contains routing for the marketplace API.
package router

import (
	"farmlink/internal/delivery/api/middleware"
	"farmlink/internal/delivery/api/response"
	"farmlink/internal/delivery/api/router/handler"
	"farmlink/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	WatchlistHandler    *handler.WatchlistHandler
	DashboardHandler    *handler.DashboardHandler
	DeliveryHandler     *handler.DeliveryHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	watchlistHandler    *handler.WatchlistHandler
	dashboardHandler    *handler.DashboardHandler
	deliveryHandler     *handler.DeliveryHandler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Metrics
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		watchlistHandler:    params.WatchlistHandler,
		dashboardHandler:    params.DashboardHandler,
		deliveryHandler:     params.DeliveryHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", response.OK)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Everything below requires a bearer token
	api := e.Group("", r.authMiddleware.Authenticate)

	notifications := api.Group("/notifications")
	{
		notifications.POST("/register", r.notificationHandler.Register)
		notifications.DELETE("/register", r.notificationHandler.Unregister)
	}

	watchlist := api.Group("/watchlist")
	{
		watchlist.POST("", r.watchlistHandler.AddItem)
		watchlist.DELETE("", r.watchlistHandler.RemoveItem)
	}

	dashboards := api.Group("/dashboards")
	{
		dashboards.GET("/buyer", r.dashboardHandler.GetBuyerDashboard)
		dashboards.GET("/farmer", r.dashboardHandler.GetFarmerLogistics)
	}

	deliveries := api.Group("/deliveries")
	{
		deliveries.POST("", r.deliveryHandler.CreateDelivery)
		deliveries.GET("/:id", r.deliveryHandler.GetDelivery)
		deliveries.POST("/:id/milestones", r.deliveryHandler.AdvanceMilestone)
		deliveries.GET("/:id/qr", r.deliveryHandler.TrackingQR)
	}
}
