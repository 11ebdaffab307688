package session

import (
	"github.com/pitchside/seatmap/internal/stadium"
	"github.com/pitchside/seatmap/internal/viewport"
)

// Layout is the immutable seat table of one stadium plus everything needed
// to draw it. It is built once at startup and shared by every session
// without locking.
type Layout struct {
	Config        stadium.Config
	Pitch         stadium.Rect
	Seats         []stadium.Seat
	Capacity      stadium.Capacity
	SectionColors []string
	View          viewport.Options
}

// NewLayout validates cfg and generates the seat table. View is stored
// with its defaults applied.
func NewLayout(cfg stadium.Config, pitch stadium.Rect, colors []string, view viewport.Options) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seats := stadium.Generate(cfg, pitch)
	return &Layout{
		Config:        cfg,
		Pitch:         pitch,
		Seats:         seats,
		Capacity:      stadium.Summarize(cfg, pitch, seats),
		SectionColors: colors,
		View:          viewport.New(view).Options(),
	}, nil
}

// Canvas returns the canonical canvas size.
func (l *Layout) Canvas() (float64, float64) {
	return l.View.CanvasWidth, l.View.CanvasHeight
}
