package viewport

// DragState is the state of the pan gesture.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Button identifies the pointer button of a press.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// Drag turns raw pointer events into Pan calls on a Viewport.
//
// Idle -> PointerDown(primary) -> Dragging -> PointerUp | PointerLeave -> Idle.
// While dragging, every move pans by the delta from the previous move, not
// from the gesture start.
type Drag struct {
	view  *Viewport
	state DragState
	lastX float64
	lastY float64
	moved float64
}

// NewDrag binds a gesture tracker to v.
func NewDrag(v *Viewport) *Drag { return &Drag{view: v} }

// State returns the current gesture state.
func (d *Drag) State() DragState { return d.state }

// Travel is the total screen distance panned in the current or last gesture.
// Hosts use it to tell a click from a drag.
func (d *Drag) Travel() float64 { return d.moved }

// PointerDown starts a gesture on the primary button. Other buttons are
// ignored.
func (d *Drag) PointerDown(b Button, x, y float64) {
	if b != ButtonPrimary {
		return
	}
	d.state = Dragging
	d.lastX, d.lastY = x, y
	d.moved = 0
}

// PointerMove pans by the delta since the previous event. It is a no-op
// when no gesture is active.
func (d *Drag) PointerMove(x, y float64) {
	if d.state != Dragging {
		return
	}
	dx, dy := x-d.lastX, y-d.lastY
	d.lastX, d.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}
	d.moved += abs(dx) + abs(dy)
	d.view.Pan(dx, dy)
}

// PointerUp ends the gesture.
func (d *Drag) PointerUp() { d.state = Idle }

// PointerLeave ends the gesture when the pointer leaves the surface.
func (d *Drag) PointerLeave() { d.state = Idle }

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
