package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/seatmap/internal/handler"
	"github.com/pitchside/seatmap/internal/match"
	"github.com/pitchside/seatmap/internal/queue"
	"github.com/pitchside/seatmap/internal/repository"
	"github.com/pitchside/seatmap/internal/session"
	"github.com/pitchside/seatmap/internal/stadium"
	"github.com/pitchside/seatmap/internal/utils"
	"github.com/pitchside/seatmap/internal/viewport"
)

const secret = "router-secret"

type users map[string]repository.User

func (u users) GetByExternalID(_ context.Context, id string) (repository.User, error) {
	if user, ok := u[id]; ok {
		return user, nil
	}
	return repository.User{}, repository.ErrUserNotFound
}

type nopSink struct{}

func (nopSink) PublishCheckout(context.Context, queue.CheckoutRequestedEvent) error { return nil }

func newServer(t *testing.T, limit echo.MiddlewareFunc) *echo.Echo {
	t.Helper()
	board, err := match.NewBoard(match.Fixtures())
	require.NoError(t, err)
	layout, err := session.NewLayout(stadium.DefaultConfig(), stadium.DefaultPitch, nil, viewport.Options{})
	require.NoError(t, err)
	reg := session.NewRegistry(layout, nil, nil)

	e := echo.New()
	RegisterRoutes(e, nil)
	RegisterPublic(e, &handler.MatchHandler{Board: board}, nil)
	RegisterViewer(e, secret, users{"kp_1": {ID: 1, Username: "ada"}}, board)
	RegisterSeatMap(e, handler.NewSeatMapHandler(reg, board, nopSink{}, nil), secret, limit)
	return e
}

func call(e *echo.Echo, method, target, subject string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if subject != "" {
		tok, _ := utils.NewViewerToken(secret, subject, time.Minute)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok.Token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPublicRoutes(t *testing.T) {
	e := newServer(t, nil)
	assert.Equal(t, http.StatusOK, call(e, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, call(e, http.MethodGet, "/readyz", "").Code)
	assert.Equal(t, http.StatusOK, call(e, http.MethodGet, "/v1/matches", "").Code)
	assert.Equal(t, http.StatusOK, call(e, http.MethodGet, "/v1/matches/123466", "").Code)
}

func TestViewerRoutesRequireToken(t *testing.T) {
	e := newServer(t, nil)
	assert.Equal(t, http.StatusUnauthorized, call(e, http.MethodGet, "/v1/dashboard", "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(e, http.MethodPost, "/v1/matches/123465/seatmap", "").Code)

	rec := call(e, http.MethodGet, "/v1/dashboard", "kp_1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome, ada!")

	assert.Equal(t, http.StatusNotFound, call(e, http.MethodGet, "/v1/dashboard", "kp_unknown").Code)
}

func TestSeatMapRoutes(t *testing.T) {
	limited := 0
	limit := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limited++
			return next(c)
		}
	}
	e := newServer(t, limit)

	assert.Equal(t, http.StatusCreated, call(e, http.MethodPost, "/v1/matches/123465/seatmap", "kp_1").Code)
	assert.Equal(t, http.StatusOK, call(e, http.MethodGet, "/v1/matches/123465/seatmap", "kp_1").Code)
	assert.Equal(t, http.StatusNotFound, call(e, http.MethodGet, "/v1/matches/123465/seatmap", "kp_2").Code)
	assert.Equal(t, http.StatusOK, call(e, http.MethodPost, "/v1/matches/123465/seatmap/seats/0/toggle", "kp_1").Code)
	assert.Equal(t, http.StatusOK, call(e, http.MethodPost, "/v1/matches/123465/seatmap/reset", "kp_1").Code)
	assert.Zero(t, limited)

	call(e, http.MethodPost, "/v1/matches/123465/seatmap/events", "kp_1")
	assert.Equal(t, 1, limited)
}
