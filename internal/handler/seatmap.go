package handler

import (
    "bytes"
    "errors"
    "log/slog"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/pitchside/seatmap/internal/match"
    "github.com/pitchside/seatmap/internal/middleware"
    "github.com/pitchside/seatmap/internal/render"
    "github.com/pitchside/seatmap/internal/session"
)

// Largest SVG surface served; bigger requests are clamped.
const maxScreenSide = 4096.0

// SeatMapHandler exposes a viewer's seat map for one match. Every route
// runs behind ViewerAuth.
type SeatMapHandler struct {
    Registry *session.Registry
    Board    *match.Board
    Sink     session.CheckoutSink
    Log      *slog.Logger
}

// NewSeatMapHandler panics on a missing dependency; wiring errors surface
// at startup instead of on the first request.
func NewSeatMapHandler(reg *session.Registry, board *match.Board, sink session.CheckoutSink, logger *slog.Logger) *SeatMapHandler {
    if reg == nil || board == nil || sink == nil {
        panic("nil dependency passed to NewSeatMapHandler")
    }
    if logger == nil {
        logger = slog.Default()
    }
    return &SeatMapHandler{Registry: reg, Board: board, Sink: sink, Log: logger}
}

// Open handles POST /v1/matches/:id/seatmap. It starts a fresh session
// seeded with the seats already sold.
func (h *SeatMapHandler) Open(c echo.Context) error {
    viewer := middleware.ViewerID(c)
    if viewer == "" {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    m, err := h.Board.Get(c.Param("id"))
    if errors.Is(err, match.ErrMatchNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "match not found"})
    }
    if !m.TicketsAvailable {
        return c.JSON(http.StatusConflict, echo.Map{"error": "tickets not available"})
    }
    s := h.Registry.Open(c.Request().Context(), viewer, m.ID)
    h.Log.Info("seat map opened", "viewer_id", viewer, "match_id", m.ID, "session_id", s.ID.String())
    return c.JSON(http.StatusCreated, s.Snapshot())
}

// Close handles DELETE /v1/matches/:id/seatmap.
func (h *SeatMapHandler) Close(c echo.Context) error {
    if err := h.Registry.Close(middleware.ViewerID(c), c.Param("id")); err != nil {
        return sessionError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}

// State handles GET /v1/matches/:id/seatmap.
func (h *SeatMapHandler) State(c echo.Context) error {
    s, err := h.session(c)
    if err != nil {
        return sessionError(c, err)
    }
    return c.JSON(http.StatusOK, s.Snapshot())
}

// SVG handles GET /v1/matches/:id/seatmap.svg?w=&h=.
func (h *SeatMapHandler) SVG(c echo.Context) error {
    s, err := h.session(c)
    if err != nil {
        return sessionError(c, err)
    }
    cw, ch := s.Canvas()
    w := screenParam(c.QueryParam("w"), cw)
    ht := screenParam(c.QueryParam("h"), ch)

    var buf bytes.Buffer
    if err := render.WriteSVG(&buf, s.Scene(w, ht)); err != nil {
        h.Log.Error("render svg failed", "err", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "render failed"})
    }
    c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
    return c.Blob(http.StatusOK, "image/svg+xml", buf.Bytes())
}

// eventsRequest accepts one event inline or a batch under "events".
type eventsRequest struct {
    session.Event
    Events []session.Event `json:"events"`
}

// Events handles POST /v1/matches/:id/seatmap/events. Events of a batch are
// applied in order; the first bad one stops the batch.
func (h *SeatMapHandler) Events(c echo.Context) error {
    s, err := h.session(c)
    if err != nil {
        return sessionError(c, err)
    }
    var req eventsRequest
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    events := req.Events
    if len(events) == 0 {
        if req.Type == "" {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "type is required"})
        }
        events = []session.Event{req.Event}
    }

    results := make([]session.Result, 0, len(events))
    for i, ev := range events {
        res, err := s.Apply(ev)
        if errors.Is(err, session.ErrUnknownEvent) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error(), "index": i, "applied": results})
        }
        results = append(results, res)
    }
    return c.JSON(http.StatusOK, echo.Map{"results": results, "state": s.Snapshot()})
}

// Toggle handles POST /v1/matches/:id/seatmap/seats/:index/toggle.
func (h *SeatMapHandler) Toggle(c echo.Context) error {
    s, err := h.session(c)
    if err != nil {
        return sessionError(c, err)
    }
    idx, err := strconv.Atoi(c.Param("index"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat index"})
    }
    st, ok := s.Toggle(idx)
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
    }
    return c.JSON(http.StatusOK, echo.Map{"seat": idx, "state": st, "summary": s.Snapshot().Summary})
}

// Refresh handles POST /v1/matches/:id/seatmap/refresh. A failing sold
// source leaves the map as it was.
func (h *SeatMapHandler) Refresh(c echo.Context) error {
    s, err := h.session(c)
    if err != nil {
        return sessionError(c, err)
    }
    n, err := h.Registry.Refresh(c.Request().Context(), s)
    if err != nil {
        h.Log.Warn("refresh sold seats failed", "match_id", s.MatchID, "err", err)
        return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "sold source unavailable", "state": s.Snapshot()})
    }
    return c.JSON(http.StatusOK, echo.Map{"newly_sold": n, "state": s.Snapshot()})
}

// Reset handles POST /v1/matches/:id/seatmap/reset. It drops the selection
// and restores the full view, then re-pulls sold seats so the map matches
// the sold source again.
func (h *SeatMapHandler) Reset(c echo.Context) error {
    s, err := h.session(c)
    if err != nil {
        return sessionError(c, err)
    }
    s.Reset()
    if _, err := h.Registry.Refresh(c.Request().Context(), s); err != nil {
        h.Log.Warn("refresh sold seats after reset failed", "match_id", s.MatchID, "err", err)
    }
    return c.JSON(http.StatusOK, s.Snapshot())
}

// Checkout handles POST /v1/matches/:id/seatmap/checkout. The selection
// stays in place whatever the outcome.
func (h *SeatMapHandler) Checkout(c echo.Context) error {
    s, err := h.session(c)
    if err != nil {
        return sessionError(c, err)
    }
    ev, err := s.Checkout(c.Request().Context(), h.Sink)
    switch {
    case errors.Is(err, session.ErrEmptySelection):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "no seats selected"})
    case err != nil:
        h.Log.Error("checkout failed", "match_id", s.MatchID, "viewer_id", s.ViewerID, "err", err)
        return c.JSON(http.StatusBadGateway, echo.Map{"error": "checkout unavailable"})
    }
    return c.JSON(http.StatusAccepted, echo.Map{
        "request_id":   ev.RequestID,
        "seats":        ev.Seats,
        "seat_numbers": ev.SeatNumbers,
    })
}

func (h *SeatMapHandler) session(c echo.Context) (*session.Session, error) {
    return h.Registry.Get(middleware.ViewerID(c), c.Param("id"))
}

func sessionError(c echo.Context, err error) error {
    if errors.Is(err, session.ErrSessionNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "seat map not open"})
    }
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

func screenParam(raw string, def float64) float64 {
    v, err := strconv.ParseFloat(raw, 64)
    if err != nil || v <= 0 {
        return def
    }
    if v > maxScreenSide {
        return maxScreenSide
    }
    return v
}
