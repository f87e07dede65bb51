// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hyperlocal/config"
	"hyperlocal/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	FollowUpHandler     *handler.FollowUpHandler
	Registry            *prometheus.Registry
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	followUpHandler     *handler.FollowUpHandler
	registry            *prometheus.Registry
	config              *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		followUpHandler:     params.FollowUpHandler,
		registry:            params.Registry,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})))

	apiV1 := e.Group("/api/v1")

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.POST("", r.notificationHandler.CreateNotification)
		notificationsGroup.POST("/broadcast", r.notificationHandler.Broadcast)
	}

	recipientsGroup := apiV1.Group("/recipients")
	{
		recipientsGroup.GET("/:id/notifications", r.notificationHandler.ListNotifications)
		recipientsGroup.PATCH("/:id/notifications/:notificationId/read", r.notificationHandler.MarkAsRead)
	}
}

// RegisterTestRoutes mounts operational endpoints that are only enabled by configuration.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		e.POST("/api/v1/followups/scan", r.followUpHandler.RunScan)
	}
}
