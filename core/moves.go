package core

// Moves appends to buf every State reachable from s by moving one mover,
// and returns the extended slice. Each successor's Cost is s.Cost plus the
// steps walked times the mover's energy.
//
// Rules:
//   - a hallway mover may only enter its own room, through free hallway
//     cells, when the room holds nothing but its kind; it walks to the
//     deepest free cell;
//   - a room mover may leave only when nothing is above it, and never when
//     it is settled (own room, every mover below it of the same kind);
//   - a leaving mover may stop on any free, non-door hallway cell reachable
//     without passing another mover.
//
// When direct is true, a room mover that can walk straight into its own room
// produces that single move instead of its hallway stops. The minimal total
// cost is the same either way; the frontier is smaller.
//
// Moves does not retain buf or s.
func Moves(t *Topology, s State, direct bool, buf []State) []State {
	occ := t.occupancy(s.Positions)

	for i, slot := range s.Positions {
		kind := t.KindOf(i)

		if t.IsHallway(slot) {
			door := t.doors[kind]
			target, ok := t.entryDepth(occ, kind)
			if ok && t.clearBetween(occ, int(slot), door) {
				steps := abs(int(slot)-door) + target + 1
				buf = append(buf, s.with(t, i, t.RoomSlot(kind, target), steps))
			}
			continue
		}

		room, depth := t.Locate(slot)
		if t.settled(occ, room, depth, kind) || t.buried(occ, room, depth) {
			continue
		}
		door := t.doors[room]

		if direct && room != kind {
			home := t.doors[kind]
			if target, ok := t.entryDepth(occ, kind); ok && t.clearBetween(occ, door, home) {
				steps := depth + 1 + abs(door-home) + target + 1
				buf = append(buf, s.with(t, i, t.RoomSlot(kind, target), steps))
				continue
			}
		}

		for c := door - 1; c >= 0; c-- {
			if occ[c] != empty {
				break
			}
			if t.IsDoor(c) {
				continue
			}
			buf = append(buf, s.with(t, i, Slot(c), depth+1+door-c))
		}
		for c := door + 1; c < t.hallway; c++ {
			if occ[c] != empty {
				break
			}
			if t.IsDoor(c) {
				continue
			}
			buf = append(buf, s.with(t, i, Slot(c), depth+1+c-door))
		}
	}

	return buf
}

// entryDepth returns the depth a mover of kind would stop at in its room,
// or false when the room is full or holds a mover of another kind.
func (t *Topology) entryDepth(occ []int, kind int) (int, bool) {
	for d := t.depth - 1; d >= 0; d-- {
		o := occ[t.RoomSlot(kind, d)]
		if o == empty {
			return d, true
		}
		if t.KindOf(o) != kind {
			return 0, false
		}
	}

	return 0, false
}

// clearBetween reports whether every hallway cell strictly between a and b is free.
func (t *Topology) clearBetween(occ []int, a, b int) bool {
	if a > b {
		a, b = b, a
	}
	for c := a + 1; c < b; c++ {
		if occ[c] != empty {
			return false
		}
	}

	return true
}

// settled reports whether a mover of kind at depth of room never needs to move again.
func (t *Topology) settled(occ []int, room, depth, kind int) bool {
	if room != kind {
		return false
	}
	for d := depth + 1; d < t.depth; d++ {
		o := occ[t.RoomSlot(room, d)]
		if o == empty || t.KindOf(o) != kind {
			return false
		}
	}

	return true
}

// buried reports whether any mover sits above depth in room.
func (t *Topology) buried(occ []int, room, depth int) bool {
	for d := 0; d < depth; d++ {
		if occ[t.RoomSlot(room, d)] != empty {
			return true
		}
	}

	return false
}
