package core

// Estimate returns s.Cost plus a lower bound of the energy still needed to
// sort s: for every mover, the hallway distance between its column and its
// own room's door, times its energy. Congestion and the steps inside rooms
// are ignored, so the bound is admissible and consistent.
func Estimate(t *Topology, s State) int64 {
	var rest int64
	for i, slot := range s.Positions {
		kind := t.KindOf(i)
		rest += int64(abs(t.Column(slot)-t.doors[kind])) * t.energy[kind]
	}

	return s.Cost + rest
}
