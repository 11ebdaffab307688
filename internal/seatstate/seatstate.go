// Package seatstate tracks, per seat index, whether a seat is available,
// selected by the viewer, or sold.
//
// Sold is set only by an external sale feed and is never cleared except by
// Reset. Viewer interaction toggles Available and Selected and leaves Sold
// seats alone.
package seatstate

import "sort"

// State is the status of one seat.
type State uint8

const (
	Available State = iota
	Selected
	Sold
)

func (s State) String() string {
	switch s {
	case Selected:
		return "SELECTED"
	case Sold:
		return "SOLD"
	default:
		return "AVAILABLE"
	}
}

// MarshalText renders the state as its upper-case name in JSON.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Fill colours used for non-available seats.
const (
	SoldColor     = "black"
	SelectedColor = "white"
)

// Seats holds the state of seats [0, Len()). Indices outside that range
// are ignored by every operation so stale indices from an earlier layout
// cannot corrupt the map.
type Seats struct {
	states   []State
	selected int
	sold     int
}

// New returns n seats, all Available.
func New(n int) *Seats {
	if n < 0 {
		n = 0
	}
	return &Seats{states: make([]State, n)}
}

// Len is the number of tracked seats.
func (s *Seats) Len() int { return len(s.states) }

// State returns the state of seat i and whether i is in range.
func (s *Seats) State(i int) (State, bool) {
	if !s.inRange(i) {
		return Available, false
	}
	return s.states[i], true
}

// MarkSold marks every in-range index as Sold, overriding a pending
// selection. It returns how many seats changed state; marking an already
// sold seat is a no-op.
func (s *Seats) MarkSold(indices []int) int {
	changed := 0
	for _, i := range indices {
		if !s.inRange(i) {
			continue
		}
		switch s.states[i] {
		case Sold:
			continue
		case Selected:
			s.selected--
		}
		s.states[i] = Sold
		s.sold++
		changed++
	}
	return changed
}

// ToggleSelect flips seat i between Available and Selected and returns the
// new state. A sold seat is left unchanged and Sold is returned. The bool
// is false when i is out of range.
func (s *Seats) ToggleSelect(i int) (State, bool) {
	if !s.inRange(i) {
		return Available, false
	}
	switch s.states[i] {
	case Available:
		s.states[i] = Selected
		s.selected++
	case Selected:
		s.states[i] = Available
		s.selected--
	}
	return s.states[i], true
}

// ColorFor returns the fill for seat i: the sold colour, the selection
// highlight, or base when the seat is available.
func (s *Seats) ColorFor(i int, base string) string {
	st, _ := s.State(i)
	switch st {
	case Sold:
		return SoldColor
	case Selected:
		return SelectedColor
	default:
		return base
	}
}

// SelectedIndices returns the selected seats in ascending order.
func (s *Seats) SelectedIndices() []int {
	out := make([]int, 0, s.selected)
	for i, st := range s.states {
		if st == Selected {
			out = append(out, i)
		}
	}
	return out
}

// SoldIndices returns the sold seats in ascending order.
func (s *Seats) SoldIndices() []int {
	out := make([]int, 0, s.sold)
	for i, st := range s.states {
		if st == Sold {
			out = append(out, i)
		}
	}
	return out
}

// Counts returns the number of selected and sold seats.
func (s *Seats) Counts() (selected, sold int) { return s.selected, s.sold }

// Reset makes every seat Available again. It is the only way to clear Sold.
func (s *Seats) Reset() {
	clear(s.states)
	s.selected, s.sold = 0, 0
}

func (s *Seats) inRange(i int) bool { return i >= 0 && i < len(s.states) }

// Dedupe sorts indices and drops duplicates and negatives. Feeds hand over
// sets, and a sorted unique slice is the Go rendering of one.
func Dedupe(indices []int) []int {
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i >= 0 {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}
	return out[:n]
}
