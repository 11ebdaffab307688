package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pitchside/seatmap/internal/render"
	"github.com/pitchside/seatmap/internal/seatstate"
	"github.com/pitchside/seatmap/internal/stadium"
)

const (
	seatGlyph = '●'
	soldGlyph = '×'
	lineGlyph = '│'
)

type styles struct {
	heading lipgloss.Style
	zoom    lipgloss.Style
	summary lipgloss.Style
	help    lipgloss.Style
	helpKey lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		heading: lipgloss.NewStyle().Bold(true),
		zoom:    lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
		summary: lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB")),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		helpKey: lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Bold(true),
	}
}

// cell is one terminal cell of the map. Empty colours mean the terminal
// default.
type cell struct {
	glyph rune
	fg    string
	bg    string
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	w, h := m.surface()
	sc := m.session.Scene(w, h)

	var b strings.Builder
	for _, line := range drawMap(sc, m.width, m.mapRows()) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(m.footer(sc))
	return b.String()
}

// drawMap rasterizes the scene onto cols x rows cells. Each cell samples
// the canvas at its centre for the bowl and the field; seats are placed by
// projecting their centres.
func drawMap(sc render.Scene, cols, rows int) []string {
	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
	}

	proj := sc.Projection
	var field render.Box
	if len(sc.Pitch.Boxes) > 0 {
		field = sc.Pitch.Boxes[0]
	}
	halfway := sc.Pitch.Halfway
	halfCell := 0.5 / math.Max(proj.Scale, 1e-9)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := proj.ToCanvas(float64(c)+0.5, float64(r)*2+1)
			switch {
			case inBox(field, p):
				grid[r][c] = cell{glyph: ' ', bg: field.Fill}
				if math.Abs(p.X-halfway.X1) <= halfCell {
					grid[r][c] = cell{glyph: lineGlyph, fg: halfway.Stroke, bg: field.Fill}
				}
			case inEllipse(sc.Bowl, p):
				grid[r][c] = cell{glyph: ' ', bg: sc.Bowl.Fill}
			}
		}
	}

	for _, s := range sc.Seats {
		sx, sy := proj.ToScreen(stadium.Pt(s.CX, s.CY))
		c, r := int(math.Floor(sx)), int(math.Floor(sy/2))
		if c < 0 || c >= cols || r < 0 || r >= rows {
			continue
		}
		g := seatGlyph
		if s.Fill == seatstate.SoldColor {
			g = soldGlyph
		}
		grid[r][c].glyph = g
		grid[r][c].fg = termColor(s.Fill)
	}

	lines := make([]string, rows)
	for r, row := range grid {
		lines[r] = renderRow(row)
	}
	return lines
}

// renderRow styles runs of cells that share colours in one call.
func renderRow(row []cell) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].fg == row[start].fg && row[i].bg == row[start].bg {
			continue
		}
		var run strings.Builder
		for _, c := range row[start:i] {
			if c.glyph == 0 {
				run.WriteByte(' ')
			} else {
				run.WriteRune(c.glyph)
			}
		}
		st := lipgloss.NewStyle()
		if row[start].fg != "" {
			st = st.Foreground(lipgloss.Color(row[start].fg))
		}
		if row[start].bg != "" {
			st = st.Background(lipgloss.Color(row[start].bg))
		}
		b.WriteString(st.Render(run.String()))
		start = i
	}
	return b.String()
}

func (m Model) footer(sc render.Scene) string {
	var legend []string
	for _, e := range sc.Legend {
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(termColor(e.Color))).Render("■")
		legend = append(legend, sw+" "+e.Label)
	}
	top := m.styles.heading.Render(sc.Heading) + "  " +
		m.styles.zoom.Render("Zoom: "+sc.ZoomLabel) + "  " +
		strings.Join(legend, "  ")

	summary := sc.Summary
	if res := m.lastResult; res.Seat >= 0 && res.Toggled {
		summary = fmt.Sprintf("Seat %d %s. %s", res.Seat+1, strings.ToLower(res.State.String()), summary)
	}

	var help []string
	for _, k := range m.keys.shortHelp() {
		h := k.Help()
		help = append(help, m.styles.helpKey.Render(h.Key)+" "+m.styles.help.Render(h.Desc))
	}
	return top + "\n" + m.styles.summary.Render(summary) + "\n" + strings.Join(help, m.styles.help.Render(" • "))
}

// termColor maps the named seat state colours to hex so lipgloss accepts
// them.
func termColor(c string) string {
	switch c {
	case seatstate.SoldColor:
		return "#000000"
	case seatstate.SelectedColor:
		return "#FFFFFF"
	}
	return c
}

func inBox(b render.Box, p stadium.Point) bool {
	return b.W > 0 && p.X >= b.X && p.X <= b.X+b.W && p.Y >= b.Y && p.Y <= b.Y+b.H
}

func inEllipse(e render.Ellipse, p stadium.Point) bool {
	if e.RX <= 0 || e.RY <= 0 {
		return false
	}
	dx, dy := (p.X-e.CX)/e.RX, (p.Y-e.CY)/e.RY
	return dx*dx+dy*dy <= 1
}
