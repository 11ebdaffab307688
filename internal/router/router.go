package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/pitchside/seatmap/internal/handler"
	"github.com/pitchside/seatmap/internal/match"
	"github.com/pitchside/seatmap/internal/middleware"
)

// RegisterRoutes registers the health checks. They never require authentication so
// load balancers can reach them.
func RegisterRoutes(e *echo.Echo, checks map[string]handler.Check) {
	e.GET("/healthz", handler.Health)
	e.GET("/readyz", handler.Ready(checks))
}

// RegisterPublic registers the match board. Responses go through the
// response cache when one is configured; cache may be nil.
func RegisterPublic(e *echo.Echo, m *handler.MatchHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1/matches")
	if cache != nil {
		g.Use(cache)
	}
	g.GET("", m.List)
	g.GET("/:id", m.Get)
}

// RegisterViewer registers the signed-in routes under /v1. The dashboard
// additionally requires a completed profile.
func RegisterViewer(e *echo.Echo, jwtSecret string, users middleware.UserLookup, board *match.Board) {
	g := e.Group("/v1", middleware.ViewerAuth(jwtSecret))
	g.GET("/dashboard", handler.Dashboard(board), middleware.RequireProfile(users))
}
