package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pitchside/seatmap/internal/seatstate"
	"github.com/pitchside/seatmap/internal/stadium"
	"github.com/pitchside/seatmap/internal/viewport"
)

// Seat drawing constants.
const (
	SeatRadius      = 4.0
	SeatStroke      = "#000"
	SeatStrokeWidth = 0.6
)

// DefaultSectionColors are cycled by section index.
var DefaultSectionColors = []string{"#ff0000", "#0000ff", "#00ff00", "#ffff00"}

// SectionColor returns the base colour of section, cycling through colors.
func SectionColor(section int, colors []string) string {
	if len(colors) == 0 {
		colors = DefaultSectionColors
	}
	if section < 0 {
		section = -section
	}
	return colors[section%len(colors)]
}

// Circle is a filled circle. Seat is the seat index for seat dots and -1
// for decoration.
type Circle struct {
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	R           float64 `json:"r"`
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	Seat        int     `json:"seat"`
}

// Box is an axis-aligned rectangle.
type Box struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	W           float64 `json:"w"`
	H           float64 `json:"h"`
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
}

// Line is a stroked segment from (X1, Y1) to (X2, Y2).
type Line struct {
	X1          float64 `json:"x1"`
	Y1          float64 `json:"y1"`
	X2          float64 `json:"x2"`
	Y2          float64 `json:"y2"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
}

// Ellipse is an axis-aligned ellipse centred on (CX, CY).
type Ellipse struct {
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	RX          float64 `json:"rx"`
	RY          float64 `json:"ry"`
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"stroke_width"`
}

// Pitch holds the field and its markings. Boxes are drawn in order.
type Pitch struct {
	Boxes        []Box  `json:"boxes"`
	Halfway      Line   `json:"halfway"`
	CentreCircle Circle `json:"centre_circle"`
}

// LegendEntry is one swatch of the legend.
type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Scene is everything needed to draw one frame.
type Scene struct {
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	ViewBox    viewport.Rect `json:"view_box"`
	Projection Projection    `json:"projection"`
	Bowl       Ellipse       `json:"bowl"`
	Pitch      Pitch         `json:"pitch"`
	Seats      []Circle      `json:"seats"`
	Legend     []LegendEntry `json:"legend"`
	Heading    string        `json:"heading"`
	ZoomLabel  string        `json:"zoom_label"`
	Summary    string        `json:"summary"`
}

// Input collects the read-only views a Scene is built from. The canvas
// size is the default screen; zero means stadium.CanvasWidth x
// stadium.CanvasHeight.
type Input struct {
	Config        stadium.Config
	Pitch         stadium.Rect
	Seats         []stadium.Seat
	State         *seatstate.Seats
	View          viewport.Rect
	Zoom          float64
	ScreenWidth   float64
	ScreenHeight  float64
	CanvasWidth   float64
	CanvasHeight  float64
	SectionColors []string
}

// Build assembles a Scene. A nil State draws every seat Available.
func Build(in Input) Scene {
	if in.CanvasWidth <= 0 || in.CanvasHeight <= 0 {
		in.CanvasWidth, in.CanvasHeight = stadium.CanvasWidth, stadium.CanvasHeight
	}
	if in.ScreenWidth <= 0 || in.ScreenHeight <= 0 {
		in.ScreenWidth, in.ScreenHeight = in.CanvasWidth, in.CanvasHeight
	}
	sc := Scene{
		Width:      in.ScreenWidth,
		Height:     in.ScreenHeight,
		ViewBox:    in.View,
		Projection: NewProjection(in.View, in.ScreenWidth, in.ScreenHeight),
		Bowl:       bowl(in.Config),
		Pitch:      markings(in.Pitch),
		Seats:      make([]Circle, 0, len(in.Seats)),
		Heading:    Heading(in.Config.TotalSeats),
		ZoomLabel:  ZoomLabel(in.Zoom),
	}

	for _, s := range in.Seats {
		base := SectionColor(s.Section, in.SectionColors)
		fill := base
		if in.State != nil {
			fill = in.State.ColorFor(s.Index, base)
		}
		sc.Seats = append(sc.Seats, Circle{
			CX: s.Position.X, CY: s.Position.Y, R: SeatRadius,
			Fill: fill, Stroke: SeatStroke, StrokeWidth: SeatStrokeWidth,
			Seat: s.Index,
		})
	}

	sc.Legend = Legend(in.Config.SectionCount, in.SectionColors)
	var selected []int
	if in.State != nil {
		selected = in.State.SelectedIndices()
	}
	sc.Summary = SummaryText(selected)
	return sc
}

// Legend lists one swatch per section followed by the sold and selected
// swatches.
func Legend(sections int, colors []string) []LegendEntry {
	out := make([]LegendEntry, 0, sections+2)
	for i := 0; i < sections; i++ {
		out = append(out, LegendEntry{Label: fmt.Sprintf("Section %d", i+1), Color: SectionColor(i, colors)})
	}
	return append(out,
		LegendEntry{Label: "Sold Out", Color: seatstate.SoldColor},
		LegendEntry{Label: "Selected", Color: seatstate.SelectedColor},
	)
}

// Heading is the capacity title. It shows the requested seat count.
func Heading(total int) string { return fmt.Sprintf("%d Capacity Stadium", total) }

// ZoomLabel formats a zoom factor with one decimal, e.g. "1.5x".
func ZoomLabel(z float64) string { return strconv.FormatFloat(z, 'f', 1, 64) + "x" }

// SummaryText lists the selected seats 1-based, or prompts for a click.
func SummaryText(selected []int) string {
	if len(selected) == 0 {
		return "Click on seats to select them"
	}
	parts := make([]string, len(selected))
	for i, idx := range selected {
		parts[i] = strconv.Itoa(idx + 1)
	}
	return "Selected Seats: " + strings.Join(parts, ", ")
}

// bowl is the stand ellipse, inset from the seat ring.
func bowl(cfg stadium.Config) Ellipse {
	return Ellipse{
		CX: cfg.Center.X, CY: cfg.Center.Y,
		RX: cfg.HalfWidth - 30, RY: cfg.HalfHeight - 30,
		Fill: "#FF9800", Stroke: "#E65100", StrokeWidth: 5,
	}
}

// markings scales the field lines to r. For the default pitch they are
// a 60x100 penalty box, a 20x50 goal area, a 5x30 goal and a centre
// circle of radius 30.
func markings(r stadium.Rect) Pitch {
	const line = "white"
	const lw = 2.0
	w, h := r.Width(), r.Height()
	midX, midY := r.Left+w/2, r.Top+h/2
	outline := func(x, y, bw, bh float64) Box {
		return Box{X: x, Y: y, W: bw, H: bh, Fill: "none", Stroke: line, StrokeWidth: lw}
	}

	penW, penH := w/5, h/2
	goalAreaW, goalAreaH := w/15, h/4
	goalW, goalH := w/60, h*3/20

	return Pitch{
		Boxes: []Box{
			{X: r.Left, Y: r.Top, W: w, H: h, Fill: "#4CAF50"},
			outline(r.Left, r.Top, w, h),
			outline(r.Left, midY-penH/2, penW, penH),
			outline(r.Right-penW, midY-penH/2, penW, penH),
			outline(r.Left, midY-goalAreaH/2, goalAreaW, goalAreaH),
			outline(r.Right-goalAreaW, midY-goalAreaH/2, goalAreaW, goalAreaH),
			{X: r.Left - goalW, Y: midY - goalH/2, W: goalW, H: goalH, Fill: line},
			{X: r.Right, Y: midY - goalH/2, W: goalW, H: goalH, Fill: line},
		},
		Halfway:      Line{X1: midX, Y1: r.Top, X2: midX, Y2: r.Bottom, Stroke: line, StrokeWidth: lw},
		CentreCircle: Circle{CX: midX, CY: midY, R: h * 3 / 20, Fill: "none", Stroke: line, StrokeWidth: lw, Seat: -1},
	}
}
