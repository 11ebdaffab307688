package router

import (
	"github.com/labstack/echo/v4"

	"github.com/pitchside/seatmap/internal/handler"
	"github.com/pitchside/seatmap/internal/middleware"
)

// RegisterSeatMap registers a viewer's seat map endpoints under
// /v1/matches/:id. All of them require a valid viewer token. Pointer events
// are the chattiest route, so limit (when non-nil) applies to them only.
func RegisterSeatMap(e *echo.Echo, h *handler.SeatMapHandler, jwtSecret string, limit echo.MiddlewareFunc) {
	g := e.Group("/v1/matches/:id", middleware.ViewerAuth(jwtSecret))

	g.POST("/seatmap", h.Open)
	g.GET("/seatmap", h.State)
	g.DELETE("/seatmap", h.Close)
	g.GET("/seatmap.svg", h.SVG)

	events := []echo.MiddlewareFunc{}
	if limit != nil {
		events = append(events, limit)
	}
	g.POST("/seatmap/events", h.Events, events...)
	g.POST("/seatmap/seats/:index/toggle", h.Toggle)
	g.POST("/seatmap/refresh", h.Refresh)
	g.POST("/seatmap/reset", h.Reset)
	g.POST("/seatmap/checkout", h.Checkout)
}
