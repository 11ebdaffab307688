package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDragStateMachine(t *testing.T) {
	d := NewDrag(New(Options{}))
	assert.Equal(t, Idle, d.State())

	d.PointerDown(ButtonSecondary, 0, 0)
	assert.Equal(t, Idle, d.State(), "only the primary button starts a drag")

	d.PointerDown(ButtonPrimary, 0, 0)
	assert.Equal(t, Dragging, d.State())

	d.PointerUp()
	assert.Equal(t, Idle, d.State())

	d.PointerDown(ButtonPrimary, 0, 0)
	d.PointerLeave()
	assert.Equal(t, Idle, d.State())
}

func TestDragPansByIncrementalDelta(t *testing.T) {
	v := New(Options{})
	v.SetZoom(2)
	d := NewDrag(v)
	start := v.Rect()

	d.PointerDown(ButtonPrimary, 100, 100)
	d.PointerMove(110, 100) // +10
	d.PointerMove(130, 90)  // +20, -10

	r := v.Rect()
	assert.InDelta(t, start.X-30.0/2, r.X, tolerance)
	assert.InDelta(t, start.Y+10.0/2, r.Y, tolerance)
	assert.InDelta(t, 40.0, d.Travel(), tolerance)
}

func TestDragMoveWhileIdleIsIgnored(t *testing.T) {
	v := New(Options{})
	d := NewDrag(v)
	start := v.Rect()

	d.PointerMove(500, 500)
	assert.Equal(t, start, v.Rect())

	d.PointerDown(ButtonPrimary, 0, 0)
	d.PointerUp()
	d.PointerMove(40, 40)
	assert.Equal(t, start, v.Rect())
}

func TestDragRestartDoesNotJump(t *testing.T) {
	v := New(Options{})
	v.SetZoom(4)
	d := NewDrag(v)

	d.PointerDown(ButtonPrimary, 0, 0)
	d.PointerMove(8, 0)
	d.PointerUp()
	mid := v.Rect()

	// A new gesture far away must not pan by the distance between gestures.
	d.PointerDown(ButtonPrimary, 300, 300)
	assert.Equal(t, mid, v.Rect())
	assert.Equal(t, 0.0, d.Travel())
}

func TestDragStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "dragging", Dragging.String())
}
