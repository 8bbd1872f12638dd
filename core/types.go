// This file declares Slot, Positions, State and the sentinel errors shared
// by every package of the module.
//
// Errors:
//
//	ErrMalformedInput - a grid or position vector does not fit the topology.
//	ErrLogicDefect    - an out-of-range access inside the core; a bug, not bad input.
//	ErrBadHallway     - hallway length is not positive.
//	ErrBadDepth       - room depth is not positive.
//	ErrBadDoors       - door list is empty, unsorted or outside the hallway.
//	ErrBadEnergy      - energy list does not match the room count or is not positive.
//	ErrTooManySlots   - the topology has more slots than a Slot can address.

package core

import (
	"errors"
	"strings"
)

// Sentinel errors for core operations.
var (
	// ErrMalformedInput indicates a layout that does not match the topology:
	// wrong dimensions or characters, wrong per-kind counts, a duplicate slot,
	// or a slot outside the burrow.
	ErrMalformedInput = errors.New("core: malformed input")

	// ErrLogicDefect indicates an internal invariant was broken. All indices are
	// derived from a validated Topology, so this is never caused by user input.
	ErrLogicDefect = errors.New("core: logic defect")

	// ErrBadHallway indicates a non-positive hallway length.
	ErrBadHallway = errors.New("core: hallway length must be positive")

	// ErrBadDepth indicates a non-positive room depth.
	ErrBadDepth = errors.New("core: room depth must be positive")

	// ErrBadDoors indicates an empty, unsorted or out-of-hallway door list.
	ErrBadDoors = errors.New("core: doors must be strictly increasing hallway cells")

	// ErrBadEnergy indicates an energy table of the wrong length or with a non-positive entry.
	ErrBadEnergy = errors.New("core: energy must hold one positive multiplier per room")

	// ErrTooManySlots indicates HallwayLength + Rooms*Depth exceeds MaxSlots.
	ErrTooManySlots = errors.New("core: topology has too many slots")
)

// Slot identifies a single-occupancy location of the burrow.
//
// Hallway cells are numbered 0..HallwayLength-1. Room cells follow:
// HallwayLength + room*Depth + depth, where depth 0 is nearest the hallway.
type Slot uint8

// MaxSlots is the largest slot count a Topology may have.
const MaxSlots = 255

// Positions maps mover index → Slot. It is the complete identity of a search
// node. Mover i has kind i / Depth, so movers are grouped by kind.
//
// A Positions value is treated as immutable once built; successors are
// produced by copying and mutating exactly one entry.
type Positions []Slot

// Key returns a compact string form of p, suitable as a map key.
func (p Positions) Key() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, s := range p {
		sb.WriteByte(byte(s))
	}

	return sb.String()
}

// Clone returns an independent copy of p.
func (p Positions) Clone() Positions {
	out := make(Positions, len(p))
	copy(out, p)

	return out
}

// State is a Positions vector together with the energy spent to reach it.
type State struct {
	Positions Positions // mover index → slot
	Cost      int64     // accumulated energy from the initial layout
}

// with returns a copy of s where mover has moved to slot, paying steps
// multiplied by the mover's energy.
func (s State) with(t *Topology, mover int, slot Slot, steps int) State {
	next := s.Positions.Clone()
	next[mover] = slot

	return State{
		Positions: next,
		Cost:      s.Cost + int64(steps)*t.energy[t.KindOf(mover)],
	}
}

// empty marks a free slot in an occupancy table.
const empty = -1

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
