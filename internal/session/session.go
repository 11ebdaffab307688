// Package session owns the per-viewer seat map: seat state, viewport and
// drag gesture over a shared Layout. A Session processes one event at a
// time; concurrent callers are serialized behind its mutex.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pitchside/seatmap/internal/queue"
	"github.com/pitchside/seatmap/internal/render"
	"github.com/pitchside/seatmap/internal/seatstate"
	"github.com/pitchside/seatmap/internal/stadium"
	"github.com/pitchside/seatmap/internal/viewport"
)

// SoldSource supplies the indices of seats already sold for a match.
type SoldSource interface {
	SoldIndices(ctx context.Context, matchID string) ([]int, error)
}

// CheckoutSink receives a committed selection.
type CheckoutSink interface {
	PublishCheckout(ctx context.Context, ev queue.CheckoutRequestedEvent) error
}

// Event kinds accepted by Apply.
const (
	EventPointerDown  = "pointer_down"
	EventPointerMove  = "pointer_move"
	EventPointerUp    = "pointer_up"
	EventPointerLeave = "pointer_leave"
	EventClick        = "click"
	EventZoom         = "zoom"
)

var (
	ErrUnknownEvent   = errors.New("unknown event type")
	ErrEmptySelection = errors.New("no seats selected")
)

// Event is one pointer or zoom input in screen coordinates. Width and
// Height give the size of the surface the coordinates refer to; zero means
// the canonical canvas size. Tolerance is the click hit radius in screen
// units; zero uses the drawn seat radius.
type Event struct {
	Type      string          `json:"type"`
	X         float64         `json:"x"`
	Y         float64         `json:"y"`
	Button    viewport.Button `json:"button"`
	Zoom      float64         `json:"zoom"`
	Width     float64         `json:"width"`
	Height    float64         `json:"height"`
	Tolerance float64         `json:"tolerance,omitempty"`
}

// Result reports what an event changed. Seat is -1 when no seat was hit.
// Travel is the screen distance panned by the current or last drag; a host
// that sees a non-zero Travel on pointer up should not follow with a click.
type Result struct {
	Seat    int             `json:"seat"`
	State   seatstate.State `json:"state"`
	Toggled bool            `json:"toggled"`
	Zoom    float64         `json:"zoom"`
	View    viewport.Rect   `json:"view"`
	Travel  float64         `json:"travel"`
}

// Session is one viewer's seat map for one match.
type Session struct {
	ID       uuid.UUID
	ViewerID string
	MatchID  string
	OpenedAt time.Time

	mu     sync.Mutex
	layout *Layout
	seats  *seatstate.Seats
	view   *viewport.Viewport
	drag   *viewport.Drag
}

// New creates a session with every seat Available and the full canvas in
// view.
func New(layout *Layout, viewerID, matchID string) *Session {
	view := viewport.New(layout.View)
	return &Session{
		ID:       uuid.New(),
		ViewerID: viewerID,
		MatchID:  matchID,
		OpenedAt: time.Now().UTC(),
		layout:   layout,
		seats:    seatstate.New(len(layout.Seats)),
		view:     view,
		drag:     viewport.NewDrag(view),
	}
}

// Apply processes one input event.
func (s *Session) Apply(ev Event) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := Result{Seat: -1}
	switch ev.Type {
	case EventPointerDown:
		s.drag.PointerDown(ev.Button, ev.X, ev.Y)
	case EventPointerMove:
		s.drag.PointerMove(ev.X, ev.Y)
	case EventPointerUp:
		s.drag.PointerUp()
	case EventPointerLeave:
		s.drag.PointerLeave()
	case EventClick:
		w, h := ev.Width, ev.Height
		if w <= 0 || h <= 0 {
			opts := s.view.Options()
			w, h = opts.CanvasWidth, opts.CanvasHeight
		}
		proj := render.NewProjection(s.view.Rect(), w, h)
		if idx, ok := render.HitTest(s.layout.Seats, proj, ev.X, ev.Y, ev.Tolerance); ok {
			res.Seat = idx
			res.State, res.Toggled = s.seats.ToggleSelect(idx)
			res.Toggled = res.Toggled && res.State != seatstate.Sold
		}
	case EventZoom:
		s.view.SnapZoom(ev.Zoom)
	default:
		return res, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	res.Zoom = s.view.Zoom()
	res.View = s.view.Rect()
	res.Travel = s.drag.Travel()
	return res, nil
}

// Toggle flips seat i directly, as a click on that seat would.
func (s *Session) Toggle(i int) (seatstate.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seats.ToggleSelect(i)
}

// Canvas returns the canonical canvas size the layout is drawn on.
func (s *Session) Canvas() (float64, float64) {
	return s.layout.Canvas()
}

// MarkSold applies sold indices and returns how many seats changed.
func (s *Session) MarkSold(indices []int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seats.MarkSold(indices)
}

// Selected returns the selected seat indices in ascending order.
func (s *Session) Selected() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seats.SelectedIndices()
}

// Reset clears every seat state, sold included, and restores the view.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seats.Reset()
	s.view.Reset()
	s.drag.PointerUp()
}

// Refresh pulls sold seats from src. On error the state is left as it was.
func (s *Session) Refresh(ctx context.Context, src SoldSource) (int, error) {
	if src == nil {
		return 0, nil
	}
	sold, err := src.SoldIndices(ctx, s.MatchID)
	if err != nil {
		return 0, fmt.Errorf("sold source: %w", err)
	}
	return s.MarkSold(seatstate.Dedupe(sold)), nil
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	SessionID string           `json:"session_id"`
	MatchID   string           `json:"match_id"`
	View      viewport.Rect    `json:"view"`
	Zoom      float64          `json:"zoom"`
	ZoomLabel string           `json:"zoom_label"`
	Dragging  bool             `json:"dragging"`
	Capacity  stadium.Capacity `json:"capacity"`
	Heading   string           `json:"heading"`
	Selected  []int            `json:"selected"`
	Sold      []int            `json:"sold"`
	SoldCount int              `json:"sold_count"`
	Summary   string           `json:"summary"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	selected := s.seats.SelectedIndices()
	_, soldCount := s.seats.Counts()
	return Snapshot{
		SessionID: s.ID.String(),
		MatchID:   s.MatchID,
		View:      s.view.Rect(),
		Zoom:      s.view.Zoom(),
		ZoomLabel: render.ZoomLabel(s.view.Zoom()),
		Dragging:  s.drag.State() == viewport.Dragging,
		Capacity:  s.layout.Capacity,
		Heading:   render.Heading(s.layout.Config.TotalSeats),
		Selected:  selected,
		Sold:      s.seats.SoldIndices(),
		SoldCount: soldCount,
		Summary:   render.SummaryText(selected),
	}
}

// Scene renders the current state for a screen of the given size.
func (s *Session) Scene(width, height float64) render.Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	cw, ch := s.layout.Canvas()
	return render.Build(render.Input{
		Config:        s.layout.Config,
		Pitch:         s.layout.Pitch,
		Seats:         s.layout.Seats,
		State:         s.seats,
		View:          s.view.Rect(),
		Zoom:          s.view.Zoom(),
		ScreenWidth:   width,
		ScreenHeight:  height,
		CanvasWidth:   cw,
		CanvasHeight:  ch,
		SectionColors: s.layout.SectionColors,
	})
}

// Checkout hands the current selection to sink. The selection is kept
// whether or not publishing succeeds.
func (s *Session) Checkout(ctx context.Context, sink CheckoutSink) (queue.CheckoutRequestedEvent, error) {
	selected := s.Selected()
	if len(selected) == 0 {
		return queue.CheckoutRequestedEvent{}, ErrEmptySelection
	}
	numbers := make([]int, len(selected))
	for i, idx := range selected {
		numbers[i] = idx + 1
	}
	ev := queue.CheckoutRequestedEvent{
		RequestID:   uuid.NewString(),
		SessionID:   s.ID.String(),
		ViewerID:    s.ViewerID,
		MatchID:     s.MatchID,
		Seats:       selected,
		SeatNumbers: numbers,
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := sink.PublishCheckout(ctx, ev); err != nil {
		return ev, fmt.Errorf("publish checkout: %w", err)
	}
	return ev, nil
}
