package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/pitchside/seatmap/internal/match"
)

// matchItem is a board entry with its display strings resolved.
type matchItem struct {
    match.Match
    Scoreline   string      `json:"scoreline"`
    MinuteLabel string      `json:"minute_label,omitempty"`
    SeatMap     string      `json:"seat_map,omitempty"`
    Timeline    []timeEntry `json:"timeline,omitempty"`
}

type timeEntry struct {
    Minute int    `json:"minute"`
    Type   string `json:"type"`
    Label  string `json:"label"`
    Team   string `json:"team"`
}

func newMatchItem(m match.Match) matchItem {
    it := matchItem{
        Match:       m,
        Scoreline:   m.Scoreline(),
        MinuteLabel: m.MinuteLabel(),
        SeatMap:     m.SeatMapPath(),
    }
    for _, ev := range m.Events {
        it.Timeline = append(it.Timeline, timeEntry{
            Minute: ev.Minute,
            Type:   string(ev.Type),
            Label:  ev.Label(),
            Team:   m.TeamName(ev.Team),
        })
    }
    return it
}

// MatchHandler serves the public match board.
type MatchHandler struct {
    Board *match.Board
}

// List handles GET /v1/matches.
func (h *MatchHandler) List(c echo.Context) error {
    ms := h.Board.List()
    out := make([]matchItem, 0, len(ms))
    for _, m := range ms {
        out = append(out, newMatchItem(m))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get handles GET /v1/matches/:id.
func (h *MatchHandler) Get(c echo.Context) error {
    m, err := h.Board.Get(c.Param("id"))
    if errors.Is(err, match.ErrMatchNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "match not found"})
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
    }
    return c.JSON(http.StatusOK, newMatchItem(m))
}
