// Package stadium lays out the seats of an elliptical stadium bowl on a
// fixed canonical canvas. The layout is a pure function of its inputs:
// the same Config and pitch always yield the same ordered seat table, and
// the seat index assigned here is the key every other component uses.
package stadium

import (
	"errors"
	"fmt"
	"math"
)

// Canonical canvas size. All seat and pitch geometry is expressed in this
// coordinate space, independent of the pixel size of any screen.
const (
	CanvasWidth  = 800.0
	CanvasHeight = 500.0
)

// Point is a position on the canonical canvas.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Distance returns the Euclidean distance from p to q.
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Rect is an axis-aligned rectangle on the canonical canvas.
type Rect struct {
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// DefaultPitch is the playing field of the default stadium.
var DefaultPitch = Rect{Left: 250, Top: 150, Right: 550, Bottom: 350}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Contains reports whether p lies strictly inside r. Points on the
// boundary are outside, so a seat touching the touchline is still placed.
func (r Rect) Contains(p Point) bool {
	return p.X > r.Left && p.X < r.Right && p.Y > r.Top && p.Y < r.Bottom
}

// Config describes the requested bowl. It is immutable once validated.
type Config struct {
	TotalSeats     int     `json:"total_seats" yaml:"total_seats"`
	SectionCount   int     `json:"section_count" yaml:"section_count"`
	RowsPerSection int     `json:"rows_per_section" yaml:"rows_per_section"`
	Center         Point   `json:"center" yaml:"center"`
	HalfWidth      float64 `json:"half_width" yaml:"half_width"`
	HalfHeight     float64 `json:"half_height" yaml:"half_height"`
}

// DefaultConfig returns the 2500-seat, four-section stadium.
func DefaultConfig() Config {
	return Config{
		TotalSeats:     2500,
		SectionCount:   4,
		RowsPerSection: 25,
		Center:         Pt(CanvasWidth/2, CanvasHeight/2),
		HalfWidth:      350,
		HalfHeight:     200,
	}
}

// ErrInvalidConfig is wrapped by Validate for every rejected field.
var ErrInvalidConfig = errors.New("invalid stadium config")

// Validate checks that every count is positive and the bowl has extent.
func (c Config) Validate() error {
	switch {
	case c.TotalSeats <= 0:
		return fmt.Errorf("%w: total_seats must be positive, got %d", ErrInvalidConfig, c.TotalSeats)
	case c.SectionCount <= 0:
		return fmt.Errorf("%w: section_count must be positive, got %d", ErrInvalidConfig, c.SectionCount)
	case c.RowsPerSection <= 0:
		return fmt.Errorf("%w: rows_per_section must be positive, got %d", ErrInvalidConfig, c.RowsPerSection)
	case c.HalfWidth <= 0 || c.HalfHeight <= 0:
		return fmt.Errorf("%w: bowl half extents must be positive", ErrInvalidConfig)
	}
	return nil
}

// SeatsPerRow is the number of candidate slots in each row, chosen so the
// full slot grid can hold TotalSeats before any pitch exclusion.
func (c Config) SeatsPerRow() int {
	perRow := c.SectionCount * c.RowsPerSection
	if perRow <= 0 {
		return 0
	}
	return (c.TotalSeats + perRow - 1) / perRow
}

// Seat is one placed seat. Index is contiguous from zero across the whole
// table; Row is the tier within the section, zero being the outermost.
type Seat struct {
	Index    int   `json:"index"`
	Position Point `json:"position"`
	Section  int   `json:"section"`
	Row      int   `json:"row"`
}

// RowRadius is the fraction of the bowl's half extents used by row. Inner
// rows shrink toward the pitch, giving a tiered bowl instead of uniform
// rings.
func RowRadius(row, rowsPerSection int) float64 {
	return 0.9 - float64(row)/(float64(rowsPerSection)*1.2)
}

// SlotAngle is the angle in radians of a slot. Sections split the circle
// evenly and slots split their section's arc evenly.
func SlotAngle(section, slot, sectionCount, seatsPerRow int) float64 {
	s := float64(sectionCount)
	return 2 * math.Pi * (float64(section)/s + float64(slot)/(float64(seatsPerRow)*s))
}

// Generate places seats section by section, row by row and slot by slot,
// skipping every slot whose position falls inside pitch. It stops once
// TotalSeats seats are placed or the slots run out, so the table can be
// shorter than requested. An invalid config yields an empty table.
func Generate(cfg Config, pitch Rect) []Seat {
	if cfg.Validate() != nil {
		return []Seat{}
	}
	perRow := cfg.SeatsPerRow()
	seats := make([]Seat, 0, cfg.TotalSeats)

	for section := 0; section < cfg.SectionCount; section++ {
		for row := 0; row < cfg.RowsPerSection; row++ {
			radius := RowRadius(row, cfg.RowsPerSection)
			for slot := 0; slot < perRow; slot++ {
				if len(seats) >= cfg.TotalSeats {
					return seats
				}
				p := cfg.slotPosition(radius, SlotAngle(section, slot, cfg.SectionCount, perRow))
				if pitch.Contains(p) {
					continue
				}
				seats = append(seats, Seat{
					Index:    len(seats),
					Position: p,
					Section:  section,
					Row:      row,
				})
			}
		}
	}
	return seats
}

// slotPosition maps a row radius and slot angle onto the bowl ellipse.
func (c Config) slotPosition(radius, angle float64) Point {
	return Point{
		X: c.Center.X + c.HalfWidth*radius*math.Cos(angle),
		Y: c.Center.Y + c.HalfHeight*radius*math.Sin(angle),
	}
}
