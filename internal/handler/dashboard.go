package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/pitchside/seatmap/internal/match"
    "github.com/pitchside/seatmap/internal/middleware"
)

// Dashboard greets the signed-in viewer and lists the matches with tickets
// on sale. It runs behind RequireProfile.
func Dashboard(board *match.Board) echo.HandlerFunc {
    return func(c echo.Context) error {
        u, ok := middleware.CurrentUser(c)
        if !ok {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "complete profile", "next": "/complete-profile"})
        }
        onSale := make([]matchItem, 0)
        for _, m := range board.List() {
            if m.TicketsAvailable {
                onSale = append(onSale, newMatchItem(m))
            }
        }
        return c.JSON(http.StatusOK, echo.Map{
            "welcome": "Welcome, " + u.DisplayName() + "!",
            "on_sale": onSale,
        })
    }
}
