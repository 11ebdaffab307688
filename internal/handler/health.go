package handler

import (
    "context"
    "net/http"
    "sort"
    "time"

    "github.com/labstack/echo/v4"
)

// Health is the liveness check. It answers "ok" while the process serves.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}

// Check pings one dependency.
type Check func(ctx context.Context) error

// Ready runs every check with a short deadline and answers 503 naming the
// failing ones.
func Ready(checks map[string]Check) echo.HandlerFunc {
    names := make([]string, 0, len(checks))
    for n := range checks {
        names = append(names, n)
    }
    sort.Strings(names)

    return func(c echo.Context) error {
        ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
        defer cancel()

        failed := echo.Map{}
        for _, n := range names {
            if err := checks[n](ctx); err != nil {
                failed[n] = err.Error()
            }
        }
        if len(failed) > 0 {
            return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable", "failed": failed})
        }
        return c.JSON(http.StatusOK, echo.Map{"status": "ready", "checks": names})
    }
}
