// Package viewport keeps the visible window over the canonical stadium
// canvas and turns pan, zoom and drag input into updates of that window.
package viewport

import "math"

// Default zoom range and slider step of the seat-map zoom control.
const (
	DefaultMinZoom  = 1.0
	DefaultMaxZoom  = 4.0
	DefaultZoomStep = 0.1
)

// Rect is the visible sub-rectangle of the canonical canvas.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the centre point of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Options configure a Viewport. Zero fields take the defaults.
type Options struct {
	CanvasWidth  float64
	CanvasHeight float64
	MinZoom      float64
	MaxZoom      float64
	ZoomStep     float64
}

func (o Options) withDefaults() Options {
	if o.CanvasWidth <= 0 {
		o.CanvasWidth = 800
	}
	if o.CanvasHeight <= 0 {
		o.CanvasHeight = 500
	}
	if o.MinZoom <= 0 {
		o.MinZoom = DefaultMinZoom
	}
	if o.MaxZoom < o.MinZoom {
		o.MaxZoom = math.Max(DefaultMaxZoom, o.MinZoom)
	}
	if o.ZoomStep <= 0 {
		o.ZoomStep = DefaultZoomStep
	}
	return o
}

// Viewport is a pan offset plus zoom factor over a fixed canvas.
// Width and Height always equal the canvas size divided by the zoom.
type Viewport struct {
	opts Options
	rect Rect
	zoom float64
}

// New returns a viewport showing the whole canvas at the minimum zoom.
func New(opts Options) *Viewport {
	v := &Viewport{opts: opts.withDefaults()}
	v.Reset()
	return v
}

// Reset returns to the default full-canvas view.
func (v *Viewport) Reset() {
	v.zoom = v.opts.MinZoom
	v.recenter()
}

// Rect returns the current visible rectangle in canonical coordinates.
func (v *Viewport) Rect() Rect { return v.rect }

// Zoom returns the current zoom factor.
func (v *Viewport) Zoom() float64 { return v.zoom }

// Options returns the effective options, defaults applied.
func (v *Viewport) Options() Options { return v.opts }

// SetZoom clamps z to the configured range, resizes the window to the
// canvas size divided by the new zoom and recentres it on the canvas
// centre. It returns the zoom actually applied.
func (v *Viewport) SetZoom(z float64) float64 {
	if math.IsNaN(z) {
		z = v.opts.MinZoom
	}
	v.zoom = math.Min(math.Max(z, v.opts.MinZoom), v.opts.MaxZoom)
	v.recenter()
	return v.zoom
}

// SnapZoom quantizes slider input to the zoom step before applying it.
func (v *Viewport) SnapZoom(z float64) float64 {
	step := v.opts.ZoomStep
	snapped := math.Round(z/step) * step
	// Keep one decimal of the step so 1.1 stays 1.1 and not 1.1000000000000001.
	snapped = math.Round(snapped*1e6) / 1e6
	return v.SetZoom(snapped)
}

// Pan translates the window by a screen-space delta. Screen deltas are
// divided by the zoom, so the same drag moves the canonical view less when
// zoomed in. Dragging right moves the window left. The window centre stays
// on the canvas.
func (v *Viewport) Pan(dx, dy float64) {
	v.rect.X -= dx / v.zoom
	v.rect.Y -= dy / v.zoom
	v.clampCenter()
}

func (v *Viewport) recenter() {
	cw, ch := v.opts.CanvasWidth, v.opts.CanvasHeight
	v.rect = Rect{
		X:      cw/2 - cw/2/v.zoom,
		Y:      ch/2 - ch/2/v.zoom,
		Width:  cw / v.zoom,
		Height: ch / v.zoom,
	}
}

func (v *Viewport) clampCenter() {
	cx, cy := v.rect.Center()
	cx = math.Min(math.Max(cx, 0), v.opts.CanvasWidth)
	cy = math.Min(math.Max(cy, 0), v.opts.CanvasHeight)
	v.rect.X = cx - v.rect.Width/2
	v.rect.Y = cy - v.rect.Height/2
}
