// Package tui is a terminal front end for one seat map session. Each
// terminal cell is one unit wide and two units tall on the drawing surface,
// which keeps the bowl round on typical fonts. A left drag pans, a left
// click without movement toggles the seat under the pointer and the wheel
// zooms.
package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pitchside/seatmap/internal/session"
	"github.com/pitchside/seatmap/internal/viewport"
)

// Rows reserved below the map for the heading, summary and help.
const footerRows = 3

// Keyboard pans move the view by this many surface units.
const panStep = 4

// Click hit radius in cells.
const clickTolerance = 1.5

// Model is the bubbletea model. The session is shared, so the model can be
// copied freely by the runtime.
type Model struct {
	session  *session.Session
	keys     KeyMap
	styles   styles
	zoomStep float64

	width  int
	height int

	pressed    bool
	quitting   bool
	lastResult session.Result
}

// NewModel wraps s. zoomStep is the keyboard and wheel increment; zero
// uses the viewport default.
func NewModel(s *session.Session, zoomStep float64) Model {
	if zoomStep <= 0 {
		zoomStep = viewport.DefaultZoomStep
	}
	return Model{
		session:  s,
		keys:     DefaultKeyMap,
		styles:   defaultStyles(),
		zoomStep: zoomStep,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Selected returns the selected seat indices.
func (m Model) Selected() []int { return m.session.Selected() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.ZoomIn):
			m.zoomBy(m.zoomStep)
		case key.Matches(msg, m.keys.ZoomOut):
			m.zoomBy(-m.zoomStep)
		case key.Matches(msg, m.keys.ResetView):
			m.apply(session.Event{Type: session.EventZoom, Zoom: viewport.DefaultMinZoom})
		case key.Matches(msg, m.keys.Clear):
			for _, i := range m.session.Selected() {
				m.session.Toggle(i)
			}
		case key.Matches(msg, m.keys.PanUp):
			m.pan(0, panStep)
		case key.Matches(msg, m.keys.PanDown):
			m.pan(0, -panStep)
		case key.Matches(msg, m.keys.PanLeft):
			m.pan(panStep, 0)
		case key.Matches(msg, m.keys.PanRight):
			m.pan(-panStep, 0)
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	inside := msg.Y >= 0 && msg.Y < m.mapRows() && msg.X >= 0 && msg.X < m.width

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Action == tea.MouseActionPress {
			m.zoomBy(m.zoomStep)
		}
		return
	case tea.MouseButtonWheelDown:
		if msg.Action == tea.MouseActionPress {
			m.zoomBy(-m.zoomStep)
		}
		return
	}

	if !inside {
		if m.pressed {
			m.apply(session.Event{Type: session.EventPointerLeave})
			m.pressed = false
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pressed = true
		x, y := m.dragPoint(msg.X, msg.Y)
		m.apply(session.Event{Type: session.EventPointerDown, X: x, Y: y, Button: viewport.ButtonPrimary})

	case tea.MouseActionMotion:
		if !m.pressed {
			return
		}
		x, y := m.dragPoint(msg.X, msg.Y)
		m.apply(session.Event{Type: session.EventPointerMove, X: x, Y: y})

	case tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		m.pressed = false
		if up := m.apply(session.Event{Type: session.EventPointerUp}); up.Travel > 0 {
			return
		}
		w, h := m.surface()
		m.apply(session.Event{
			Type:      session.EventClick,
			X:         float64(msg.X) + 0.5,
			Y:         float64(msg.Y)*2 + 1,
			Width:     w,
			Height:    h,
			Tolerance: clickTolerance,
		})
	}
}

func (m *Model) apply(ev session.Event) session.Result {
	res, err := m.session.Apply(ev)
	if err == nil {
		m.lastResult = res
	}
	return res
}

func (m *Model) zoomBy(delta float64) {
	m.apply(session.Event{Type: session.EventZoom, Zoom: m.session.Snapshot().Zoom + delta})
}

// pan runs a synthetic drag so keyboard panning follows the same path as
// the mouse.
func (m *Model) pan(dcols, drows int) {
	x0, y0 := m.dragPoint(0, 0)
	x1, y1 := m.dragPoint(dcols, drows)
	m.apply(session.Event{Type: session.EventPointerDown, X: x0, Y: y0, Button: viewport.ButtonPrimary})
	m.apply(session.Event{Type: session.EventPointerMove, X: x1, Y: y1})
	m.apply(session.Event{Type: session.EventPointerUp})
}

func (m Model) mapRows() int {
	return max(m.height-footerRows, 1)
}

// surface is the drawing surface size in half-cell units.
func (m Model) surface() (float64, float64) {
	return float64(max(m.width, 1)), float64(m.mapRows() * 2)
}

// dragPoint converts a cell to drag coordinates. Pan divides screen deltas
// by the zoom, so deltas are expressed at the zoom-1 scale of the surface
// to make the map follow the pointer.
func (m Model) dragPoint(col, row int) (float64, float64) {
	w, h := m.surface()
	cw, ch := m.session.Canvas()
	base := math.Min(w/cw, h/ch)
	if base <= 0 {
		base = 1
	}
	return float64(col) / base, float64(row*2) / base
}
