package core

import "fmt"

// NewState validates positions against t and returns the initial State at
// cost zero. The positions are copied.
//
// Every failure wraps ErrMalformedInput:
//   - len(positions) differs from t.Movers();
//   - a slot lies outside the burrow;
//   - a mover stands on a door cell, where stopping is not allowed;
//   - two movers share a slot.
func NewState(t *Topology, positions []Slot) (State, error) {
	if len(positions) != t.Movers() {
		return State{}, fmt.Errorf("%w: %d positions for %d movers", ErrMalformedInput, len(positions), t.Movers())
	}

	owner := make(map[Slot]int, len(positions))
	for i, s := range positions {
		if int(s) >= t.Slots() {
			return State{}, fmt.Errorf("%w: mover %d at slot %d outside [0,%d)", ErrMalformedInput, i, s, t.Slots())
		}
		if t.IsHallway(s) && t.IsDoor(int(s)) {
			return State{}, fmt.Errorf("%w: mover %d stands on door cell %d", ErrMalformedInput, i, s)
		}
		if j, dup := owner[s]; dup {
			return State{}, fmt.Errorf("%w: movers %d and %d share slot %d", ErrMalformedInput, j, i, s)
		}
		owner[s] = i
	}

	return State{Positions: Positions(positions).Clone()}, nil
}
