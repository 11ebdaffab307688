// Package render turns the seat table, the viewport and the seat state into
// drawable primitives, an SVG document, and pointer hit tests. It owns no
// state of its own: every Scene is rebuilt from its inputs.
package render

import (
	"math"

	"github.com/pitchside/seatmap/internal/stadium"
	"github.com/pitchside/seatmap/internal/viewport"
)

// Projection maps canonical canvas coordinates onto a screen of arbitrary
// size the way an SVG viewBox with preserveAspectRatio "xMidYMid meet"
// does: one uniform scale, the view centred along the slack axis.
type Projection struct {
	Scale float64 `json:"scale"`
	TX    float64 `json:"tx"`
	TY    float64 `json:"ty"`
}

// NewProjection fits view into a screenW x screenH surface. A non-positive
// screen size falls back to the view's own size.
func NewProjection(view viewport.Rect, screenW, screenH float64) Projection {
	if view.Width <= 0 || view.Height <= 0 {
		return Projection{Scale: 1}
	}
	if screenW <= 0 || screenH <= 0 {
		screenW, screenH = view.Width, view.Height
	}
	scale := math.Min(screenW/view.Width, screenH/view.Height)
	return Projection{
		Scale: scale,
		TX:    (screenW-view.Width*scale)/2 - view.X*scale,
		TY:    (screenH-view.Height*scale)/2 - view.Y*scale,
	}
}

// ToScreen maps a canonical point to screen coordinates.
func (p Projection) ToScreen(pt stadium.Point) (float64, float64) {
	return pt.X*p.Scale + p.TX, pt.Y*p.Scale + p.TY
}

// ToCanvas is the inverse of ToScreen.
func (p Projection) ToCanvas(sx, sy float64) stadium.Point {
	if p.Scale == 0 {
		return stadium.Point{}
	}
	return stadium.Pt((sx-p.TX)/p.Scale, (sy-p.TY)/p.Scale)
}

// HitTest returns the index of the seat nearest to the screen point
// (sx, sy) within tolerance screen units. A non-positive tolerance means
// the drawn seat radius at the current scale.
func HitTest(seats []stadium.Seat, proj Projection, sx, sy, tolerance float64) (int, bool) {
	if tolerance <= 0 {
		tolerance = SeatRadius * proj.Scale
	}
	best, bestDist := -1, math.Inf(1)
	for _, s := range seats {
		d := stadium.Pt(proj.ToScreen(s.Position)).Distance(stadium.Pt(sx, sy))
		if d <= tolerance && d < bestDist {
			best, bestDist = s.Index, d
		}
	}
	return best, best >= 0
}
