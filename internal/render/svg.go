package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// svgDecimals is the precision of every coordinate in the document.
const svgDecimals = 2

// WriteSVG writes sc as a standalone SVG document. The map group carries
// the scene projection as its transform, so seats keep canonical
// coordinates; the legend and footer text are drawn in screen space.
func WriteSVG(w io.Writer, sc Scene) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Decimals = svgDecimals

	canvas.Start(sc.Width, sc.Height)
	canvas.Rect(0, 0, sc.Width, sc.Height, `fill="#f3f4f6"`)

	v := sc.ViewBox
	canvas.Group(`id="map"`, fmt.Sprintf(`data-viewbox="%s %s %s %s"`, num(v.X), num(v.Y), num(v.Width), num(v.Height)))
	canvas.Translate(sc.Projection.TX, sc.Projection.TY)
	canvas.Scale(sc.Projection.Scale)

	b := sc.Bowl
	canvas.Ellipse(b.CX, b.CY, b.RX, b.RY, paint(b.Fill, b.Stroke, b.StrokeWidth)...)

	canvas.Group(`id="pitch"`)
	for _, r := range sc.Pitch.Boxes {
		canvas.Rect(r.X, r.Y, r.W, r.H, paint(r.Fill, r.Stroke, r.StrokeWidth)...)
	}
	l := sc.Pitch.Halfway
	canvas.Line(l.X1, l.Y1, l.X2, l.Y2, paint("", l.Stroke, l.StrokeWidth)...)
	c := sc.Pitch.CentreCircle
	canvas.Circle(c.CX, c.CY, c.R, paint(c.Fill, c.Stroke, c.StrokeWidth)...)
	canvas.Gend()

	canvas.Gid("seats")
	for _, s := range sc.Seats {
		canvas.Circle(s.CX, s.CY, s.R, append([]string{`data-seat="` + strconv.Itoa(s.Seat) + `"`}, paint(s.Fill, s.Stroke, s.StrokeWidth)...)...)
	}
	canvas.Gend()
	canvas.Gend() // scale
	canvas.Gend() // translate
	canvas.Gend() // map

	// Legend, top right.
	lx := sc.Width - 130
	canvas.Group(`id="legend"`, `font-family="sans-serif"`, `font-size="12"`)
	canvas.Rect(lx, 8, 122, float64(28+18*len(sc.Legend)), `fill="white"`, `stroke="#ccc"`)
	canvas.Text(lx+8, 26, "Sections", `font-weight="bold"`)
	for i, e := range sc.Legend {
		y := float64(36 + 18*i)
		canvas.Rect(lx+8, y, 12, 12, paint(e.Color, "#000", 0.5)...)
		canvas.Text(lx+26, y+10, e.Label)
	}
	canvas.Gend()

	canvas.Group(`id="footer"`, `font-family="sans-serif"`)
	canvas.Text(12, sc.Height-34, sc.Heading, `font-size="18"`, `font-weight="bold"`)
	canvas.Text(sc.Width-12, sc.Height-34, "Zoom: "+sc.ZoomLabel, `font-size="14"`, `text-anchor="end"`)
	canvas.Text(12, sc.Height-12, sc.Summary, `font-size="14"`)
	canvas.Gend()
	canvas.End()

	return bw.Flush()
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// paint returns the fill and stroke attributes. An empty colour is left
// out.
func paint(fill, stroke string, width float64) []string {
	var out []string
	if fill != "" {
		out = append(out, `fill="`+attr(fill)+`"`)
	}
	if stroke != "" {
		out = append(out, `stroke="`+attr(stroke)+`"`, `stroke-width="`+num(width)+`"`)
	}
	return out
}

// attr escapes s for use in an attribute value.
func attr(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
