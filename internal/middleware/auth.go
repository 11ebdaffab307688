package middleware

import (
    "net/http"
    "strings"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"
)

// Context keys set by the middlewares in this package.
const (
    ViewerKey = "viewer_id"
    UserKey   = "user"
)

// ViewerAuth validates an HS256 bearer token issued by the identity
// provider and stores its subject under ViewerKey. The subject is an
// opaque viewer id; no roles are read.
func ViewerAuth(secret string) echo.MiddlewareFunc {
    keyFunc := func(t *jwt.Token) (any, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, echo.ErrUnauthorized
        }
        return []byte(secret), nil
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get(echo.HeaderAuthorization)
            raw, ok := strings.CutPrefix(auth, "Bearer ")
            if !ok || raw == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }

            var claims jwt.RegisteredClaims
            tok, err := jwt.ParseWithClaims(raw, &claims, keyFunc, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }
            if claims.Subject == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }

            c.Set(ViewerKey, claims.Subject)
            return next(c)
        }
    }
}

// ViewerID returns the viewer id stored by ViewerAuth, or "" when the
// request is anonymous.
func ViewerID(c echo.Context) string {
    if s, ok := c.Get(ViewerKey).(string); ok {
        return s
    }
    return ""
}
