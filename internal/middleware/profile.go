package middleware

import (
    "context"
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/pitchside/seatmap/internal/repository"
)

// UserLookup resolves a viewer id to its user record.
type UserLookup interface {
    GetByExternalID(ctx context.Context, externalID string) (repository.User, error)
}

// RequireProfile admits only viewers that have a user record and stores the
// record under UserKey. An authenticated viewer without one is told to
// complete their profile. It must run after ViewerAuth.
func RequireProfile(users UserLookup) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            viewer := ViewerID(c)
            if viewer == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
            }
            u, err := users.GetByExternalID(c.Request().Context(), viewer)
            if errors.Is(err, repository.ErrUserNotFound) {
                return c.JSON(http.StatusNotFound, echo.Map{"error": "complete profile", "next": "/complete-profile"})
            }
            if err != nil {
                return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
            }
            c.Set(UserKey, u)
            return next(c)
        }
    }
}

// CurrentUser returns the record stored by RequireProfile.
func CurrentUser(c echo.Context) (repository.User, bool) {
    u, ok := c.Get(UserKey).(repository.User)
    return u, ok
}
