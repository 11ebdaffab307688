package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/seatmap/internal/seatstate"
	"github.com/pitchside/seatmap/internal/stadium"
	"github.com/pitchside/seatmap/internal/viewport"
)

const tolerance = 1e-9

func TestProjectionFullCanvasIsIdentity(t *testing.T) {
	v := viewport.New(viewport.Options{})
	p := NewProjection(v.Rect(), 800, 500)
	assert.InDelta(t, 1.0, p.Scale, tolerance)
	assert.InDelta(t, 0.0, p.TX, tolerance)
	assert.InDelta(t, 0.0, p.TY, tolerance)
}

func TestProjectionLetterboxes(t *testing.T) {
	v := viewport.New(viewport.Options{})
	p := NewProjection(v.Rect(), 1600, 500)
	assert.InDelta(t, 1.0, p.Scale, tolerance)
	assert.InDelta(t, 400.0, p.TX, tolerance)
	assert.InDelta(t, 0.0, p.TY, tolerance)
}

func TestProjectionZoomedRoundTrip(t *testing.T) {
	v := viewport.New(viewport.Options{})
	v.SetZoom(2)
	p := NewProjection(v.Rect(), 800, 500)
	assert.InDelta(t, 2.0, p.Scale, tolerance)

	x, y := p.ToScreen(stadium.Pt(400, 250))
	assert.InDelta(t, 400.0, x, tolerance)
	assert.InDelta(t, 250.0, y, tolerance)

	back := p.ToCanvas(123, 77)
	x, y = p.ToScreen(back)
	assert.InDelta(t, 123.0, x, tolerance)
	assert.InDelta(t, 77.0, y, tolerance)
}

func TestHitTest(t *testing.T) {
	seats := stadium.Generate(stadium.DefaultConfig(), stadium.DefaultPitch)
	require.NotEmpty(t, seats)
	p := NewProjection(viewport.New(viewport.Options{}).Rect(), 800, 500)

	idx, ok := HitTest(seats, p, 715, 250, 0)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	// Centre of the pitch is never a seat.
	_, ok = HitTest(seats, p, 400, 250, 0)
	assert.False(t, ok)
}

func TestHitTestPicksNearest(t *testing.T) {
	seats := []stadium.Seat{
		{Index: 0, Position: stadium.Pt(100, 100)},
		{Index: 1, Position: stadium.Pt(106, 100)},
	}
	p := Projection{Scale: 1}
	idx, ok := HitTest(seats, p, 105, 100, 10)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestSectionColorCycles(t *testing.T) {
	assert.Equal(t, "#ff0000", SectionColor(0, nil))
	assert.Equal(t, "#0000ff", SectionColor(5, nil))
	assert.Equal(t, "#0000ff", SectionColor(-1, nil))
	assert.Equal(t, "teal", SectionColor(3, []string{"teal"}))
}

func TestSummaryText(t *testing.T) {
	assert.Equal(t, "Click on seats to select them", SummaryText(nil))
	assert.Equal(t, "Selected Seats: 1, 5, 10", SummaryText([]int{0, 4, 9}))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "2500 Capacity Stadium", Heading(2500))
	assert.Equal(t, "2.0x", ZoomLabel(2))
	assert.Equal(t, "1.5x", ZoomLabel(1.5))
}

func buildDefault(t *testing.T) (Scene, *seatstate.Seats) {
	t.Helper()
	cfg := stadium.DefaultConfig()
	seats := stadium.Generate(cfg, stadium.DefaultPitch)
	st := seatstate.New(len(seats))
	st.ToggleSelect(0)
	st.MarkSold([]int{1})
	v := viewport.New(viewport.Options{})
	v.SetZoom(2)
	return Build(Input{
		Config: cfg, Pitch: stadium.DefaultPitch, Seats: seats, State: st,
		View: v.Rect(), Zoom: v.Zoom(), ScreenWidth: 800, ScreenHeight: 500,
	}), st
}

func TestBuildScene(t *testing.T) {
	sc, st := buildDefault(t)

	require.Len(t, sc.Seats, st.Len())
	assert.Equal(t, seatstate.SelectedColor, sc.Seats[0].Fill)
	assert.Equal(t, seatstate.SoldColor, sc.Seats[1].Fill)
	assert.Equal(t, "#ff0000", sc.Seats[2].Fill)
	assert.Equal(t, SeatRadius, sc.Seats[2].R)

	require.Len(t, sc.Legend, 6)
	assert.Equal(t, LegendEntry{Label: "Section 1", Color: "#ff0000"}, sc.Legend[0])
	assert.Equal(t, "Sold Out", sc.Legend[4].Label)
	assert.Equal(t, "Selected", sc.Legend[5].Label)

	assert.Equal(t, "2500 Capacity Stadium", sc.Heading)
	assert.Equal(t, "2.0x", sc.ZoomLabel)
	assert.Equal(t, "Selected Seats: 1", sc.Summary)
	assert.InDelta(t, 2.0, sc.Projection.Scale, tolerance)
}

func TestDefaultPitchMarkings(t *testing.T) {
	sc, _ := buildDefault(t)
	m := sc.Pitch

	require.Len(t, m.Boxes, 8)
	assert.Equal(t, Box{X: 250, Y: 150, W: 300, H: 200, Fill: "#4CAF50"}, m.Boxes[0])
	assert.Equal(t, [4]float64{250, 200, 60, 100}, xywh(m.Boxes[2]))
	assert.Equal(t, [4]float64{490, 200, 60, 100}, xywh(m.Boxes[3]))
	assert.Equal(t, [4]float64{250, 225, 20, 50}, xywh(m.Boxes[4]))
	assert.Equal(t, [4]float64{530, 225, 20, 50}, xywh(m.Boxes[5]))
	assert.Equal(t, [4]float64{245, 235, 5, 30}, xywh(m.Boxes[6]))
	assert.Equal(t, [4]float64{550, 235, 5, 30}, xywh(m.Boxes[7]))
	assert.Equal(t, 400.0, m.Halfway.X1)
	assert.Equal(t, 30.0, m.CentreCircle.R)

	assert.Equal(t, 320.0, sc.Bowl.RX)
	assert.Equal(t, 170.0, sc.Bowl.RY)
}

func xywh(b Box) [4]float64 { return [4]float64{b.X, b.Y, b.W, b.H} }

func TestBuildWithoutStateOrSeats(t *testing.T) {
	sc := Build(Input{Config: stadium.DefaultConfig(), Pitch: stadium.DefaultPitch})
	assert.Empty(t, sc.Seats)
	assert.Equal(t, 800.0, sc.Width)
	assert.Equal(t, "Click on seats to select them", sc.Summary)
}

func TestBuildDefaultsScreenToCanvas(t *testing.T) {
	sc := Build(Input{
		Config: stadium.DefaultConfig(), Pitch: stadium.DefaultPitch,
		View:        viewport.Rect{Width: 1200, Height: 750},
		CanvasWidth: 1200, CanvasHeight: 750,
	})
	assert.Equal(t, 1200.0, sc.Width)
	assert.Equal(t, 750.0, sc.Height)
	assert.Equal(t, 1.0, sc.Projection.Scale)
}

func TestWriteSVG(t *testing.T) {
	sc, _ := buildDefault(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, sc))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<svg width="800.00" height="500.00"`)
	assert.Contains(t, out, `data-viewbox="200 125 400 250"`)
	assert.Contains(t, out, `<g transform="translate(-400.00,-250.00)">`)
	assert.Contains(t, out, `<g transform="scale(2)">`)
	assert.Contains(t, out, `data-seat="0"`)
	assert.Contains(t, out, `fill="black"`)
	assert.Contains(t, out, `<ellipse cx="400.00" cy="250.00" rx="320.00" ry="170.00"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
	assert.Equal(t, strings.Count(out, "<g "), strings.Count(out, "</g>"))
	assert.Contains(t, out, "Selected Seats: 1")
	assert.Contains(t, out, "2500 Capacity Stadium")
	assert.Equal(t, len(sc.Seats), strings.Count(out, "data-seat="))
}

func TestWriteSVGEscapesText(t *testing.T) {
	sc := Build(Input{Config: stadium.DefaultConfig(), Pitch: stadium.DefaultPitch})
	sc.Summary = `<b>&`
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, sc))
	assert.Contains(t, buf.String(), "&lt;b&gt;&amp;")
}
