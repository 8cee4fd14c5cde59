package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	DashboardHandler *DashboardHandler
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	// Middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Skip logging for polling endpoints to reduce noise
			path := c.Request().URL.Path
			return path == "/health" || path == "/api/dashboard"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return SuccessResponse(c, map[string]interface{}{
			"status":  "healthy",
			"service": "tradedeck-dashboard",
		})
	})

	handler := config.DashboardHandler

	// API group
	api := e.Group("/api")

	api.GET("/dashboard", handler.GetDashboard)

	api.POST("/watchlist", handler.AddToWatchlist)
	api.DELETE("/watchlist/:id", handler.RemoveFromWatchlist)

	api.POST("/bot/start", handler.StartBot)
	api.DELETE("/stocks/:symbol", handler.RemoveStock)

	api.GET("/chart/:symbol", handler.LoadChart)

	orders := api.Group("/orders")
	{
		orders.POST("/ticket", handler.OpenTicket)
		orders.DELETE("/ticket/:id", handler.CloseTicket)
		orders.POST("/ticket/:id/submit", handler.SubmitOrder)
	}
}
