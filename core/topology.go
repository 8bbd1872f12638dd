package core

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Defaults describing the standard burrow: an 11-cell hallway with four
// rooms whose doors open at cells 2, 4, 6 and 8.
const (
	DefaultHallwayLength = 11
	DefaultDepth         = 2
)

// maxDefaultKinds bounds the 10^k default energy table to values that fit int64.
const maxDefaultKinds = 19

// DefaultDoors returns the door cells of the standard burrow.
func DefaultDoors() []int {
	return []int{2, 4, 6, 8}
}

// Options configures a Topology.
//
// HallwayLength – number of hallway cells (L).
// Depth         – capacity of every room (D).
// Doors         – hallway cell above each room; len(Doors) is the room count (R).
// Energy        – per-step multiplier of each kind; nil means 10^k for kind k.
type Options struct {
	HallwayLength int
	Depth         int
	Doors         []int
	Energy        []int64
}

// Option represents a functional option for configuring a Topology.
type Option func(*Options)

// DefaultOptions returns the options of the standard depth-2 burrow.
func DefaultOptions() Options {
	return Options{
		HallwayLength: DefaultHallwayLength,
		Depth:         DefaultDepth,
		Doors:         DefaultDoors(),
	}
}

// WithHallwayLength sets the number of hallway cells.
func WithHallwayLength(n int) Option {
	return func(o *Options) {
		o.HallwayLength = n
	}
}

// WithDepth sets the room capacity.
func WithDepth(depth int) Option {
	return func(o *Options) {
		o.Depth = depth
	}
}

// WithDoors sets the hallway cell above each room, left to right.
func WithDoors(doors ...int) Option {
	return func(o *Options) {
		o.Doors = append([]int(nil), doors...)
	}
}

// WithEnergy overrides the per-step multiplier of every kind.
func WithEnergy(energy ...int64) Option {
	return func(o *Options) {
		o.Energy = append([]int64(nil), energy...)
	}
}

// Topology is the immutable shape of a burrow. It is safe for concurrent use.
type Topology struct {
	hallway   int
	depth     int
	doors     []int
	energy    []int64
	doorCells mapset.Set[int] // hallway cells a mover may cross but never stop on
}

// NewTopology validates the options and builds a Topology.
//
// Returns ErrBadHallway, ErrBadDepth, ErrBadDoors, ErrBadEnergy or
// ErrTooManySlots, wrapped with the offending value.
func NewTopology(opts ...Option) (*Topology, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.HallwayLength <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadHallway, cfg.HallwayLength)
	}
	if cfg.Depth <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDepth, cfg.Depth)
	}
	if len(cfg.Doors) == 0 {
		return nil, fmt.Errorf("%w: no rooms", ErrBadDoors)
	}
	for i, d := range cfg.Doors {
		if d < 0 || d >= cfg.HallwayLength {
			return nil, fmt.Errorf("%w: door %d at cell %d outside hallway [0,%d)", ErrBadDoors, i, d, cfg.HallwayLength)
		}
		if i > 0 && d <= cfg.Doors[i-1] {
			return nil, fmt.Errorf("%w: door %d at cell %d not right of door %d", ErrBadDoors, i, d, i-1)
		}
	}

	rooms := len(cfg.Doors)
	if slots := cfg.HallwayLength + rooms*cfg.Depth; slots > MaxSlots {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManySlots, slots, MaxSlots)
	}

	energy := cfg.Energy
	if energy == nil {
		if rooms > maxDefaultKinds {
			return nil, fmt.Errorf("%w: %d rooms need an explicit energy table", ErrBadEnergy, rooms)
		}
		energy = make([]int64, rooms)
		for k, e := 0, int64(1); k < rooms; k, e = k+1, e*10 {
			energy[k] = e
		}
	}
	if len(energy) != rooms {
		return nil, fmt.Errorf("%w: %d multipliers for %d rooms", ErrBadEnergy, len(energy), rooms)
	}
	for k, e := range energy {
		if e <= 0 {
			return nil, fmt.Errorf("%w: kind %d has multiplier %d", ErrBadEnergy, k, e)
		}
	}

	doorCells := mapset.New[int]()
	for _, d := range cfg.Doors {
		doorCells.Put(d)
	}

	return &Topology{
		hallway:   cfg.HallwayLength,
		depth:     cfg.Depth,
		doors:     append([]int(nil), cfg.Doors...),
		energy:    energy,
		doorCells: doorCells,
	}, nil
}

// Standard returns the standard four-room burrow with the given room depth.
func Standard(depth int) (*Topology, error) {
	return NewTopology(WithDepth(depth))
}

// HallwayLength returns the number of hallway cells.
func (t *Topology) HallwayLength() int { return t.hallway }

// Depth returns the capacity of every room.
func (t *Topology) Depth() int { return t.depth }

// Rooms returns the number of rooms, which is also the number of kinds.
func (t *Topology) Rooms() int { return len(t.doors) }

// Movers returns the number of movers, Rooms*Depth.
func (t *Topology) Movers() int { return len(t.doors) * t.depth }

// Slots returns the total number of slots, hallway cells plus room cells.
func (t *Topology) Slots() int { return t.hallway + len(t.doors)*t.depth }

// Door returns the hallway cell directly above room.
func (t *Topology) Door(room int) int { return t.doors[room] }

// Energy returns the per-step multiplier of kind.
func (t *Topology) Energy(kind int) int64 { return t.energy[kind] }

// KindOf returns the kind of mover; movers are grouped by kind.
func (t *Topology) KindOf(mover int) int { return mover / t.depth }

// IsDoor reports whether hallway cell is directly above a door.
func (t *Topology) IsDoor(cell int) bool { return t.doorCells.Has(cell) }

// IsHallway reports whether s is a hallway cell.
func (t *Topology) IsHallway(s Slot) bool { return int(s) < t.hallway }

// RoomSlot returns the slot at depth of room.
func (t *Topology) RoomSlot(room, depth int) Slot {
	return Slot(t.hallway + room*t.depth + depth)
}

// Locate returns the room and depth of a room slot.
// The result is meaningless for hallway slots.
func (t *Topology) Locate(s Slot) (room, depth int) {
	off := int(s) - t.hallway

	return off / t.depth, off % t.depth
}

// Column returns the hallway column of s: the cell itself for hallway slots,
// the room's door for room slots.
func (t *Topology) Column(s Slot) int {
	if t.IsHallway(s) {
		return int(s)
	}
	room, _ := t.Locate(s)

	return t.doors[room]
}

// Solved reports whether every mover sits in the room of its kind.
func (t *Topology) Solved(p Positions) bool {
	for i, s := range p {
		if t.IsHallway(s) {
			return false
		}
		if room, _ := t.Locate(s); room != t.KindOf(i) {
			return false
		}
	}

	return true
}

// occupancy returns a slot → mover table, with empty for free slots.
func (t *Topology) occupancy(p Positions) []int {
	occ := make([]int, t.Slots())
	for i := range occ {
		occ[i] = empty
	}
	for i, s := range p {
		occ[s] = i
	}

	return occ
}
