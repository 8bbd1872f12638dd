package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/core"
)

// exampleStart is the canonical depth-2 layout:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
var exampleStart = []core.Slot{12, 18, 11, 15, 13, 16, 17, 14}

func mustState(t *testing.T, topo *core.Topology, slots ...core.Slot) core.State {
	t.Helper()
	s, err := core.NewState(topo, slots)
	require.NoError(t, err)

	return s
}

// movedMover returns the single mover whose slot differs between a and b.
func movedMover(t *testing.T, a, b core.Positions) int {
	t.Helper()
	moved := -1
	for i := range a {
		if a[i] != b[i] {
			require.Equal(t, -1, moved, "more than one mover changed")
			moved = i
		}
	}
	require.NotEqual(t, -1, moved, "no mover changed")

	return moved
}

func TestMoves_EnterRoomAtDeepestFreeDepth(t *testing.T) {
	topo := standard(t, 2)
	// A at hallway 0, the other A at the bottom of room 0, every other room sorted.
	s := mustState(t, topo, 0, 12, 13, 14, 15, 16, 17, 18)

	moves := core.Moves(topo, s, true, nil)
	require.Len(t, moves, 1)
	assert.Equal(t, core.Slot(11), moves[0].Positions[0])
	assert.Equal(t, int64(3), moves[0].Cost) // 2 hallway steps + 1 into depth 0
}

func TestMoves_EnterEmptyRoomAddsDepth(t *testing.T) {
	topo := standard(t, 2)
	// Both Ds in the hallway at 9 and 10, room 3 empty.
	s := mustState(t, topo, 11, 12, 13, 14, 15, 16, 9, 10)

	moves := core.Moves(topo, s, true, nil)
	// Only the D at 9 can enter; the D at 10 is stuck behind it.
	require.Len(t, moves, 1)
	assert.Equal(t, core.Slot(18), moves[0].Positions[6])
	assert.Equal(t, int64(3000), moves[0].Cost) // 1 hallway step + 2 down, at 1000 each
}

func TestMoves_OccupiedHallwayBlocks(t *testing.T) {
	topo := standard(t, 2)
	// A at 1 and A at 3 hem in the B on top of room 0; the C below it is buried.
	s := mustState(t, topo, 1, 3, 11, 14, 12, 16, 17, 18)

	for _, direct := range []bool{true, false} {
		moves := core.Moves(topo, s, direct, nil)
		assert.Empty(t, moves, "direct=%v", direct)
	}
}

func TestMoves_DirectRoomToRoom(t *testing.T) {
	topo := standard(t, 2)
	// Same as above but the second A waits at 9, freeing cell 3.
	s := mustState(t, topo, 1, 9, 11, 14, 12, 16, 17, 18)

	moves := core.Moves(topo, s, true, nil)
	require.Len(t, moves, 1)
	assert.Equal(t, core.Slot(13), moves[0].Positions[2])
	assert.Equal(t, int64(40), moves[0].Cost) // 1 up, 2 across, 1 down, at 10 each

	// Without the shortcut the B stops at every free non-door cell up to the A at 9.
	moves = core.Moves(topo, s, false, nil)
	got := map[core.Slot]int64{}
	for _, m := range moves {
		require.Equal(t, 2, movedMover(t, s.Positions, m.Positions))
		got[m.Positions[2]] = m.Cost
	}
	assert.Equal(t, map[core.Slot]int64{3: 20, 5: 40, 7: 60}, got)
}

func TestMoves_LeaveRoomBothDirections(t *testing.T) {
	topo := standard(t, 2)
	s := mustState(t, topo, exampleStart...)

	moves := core.Moves(topo, s, true, nil)
	// Four top movers, seven stops each (0, 1, 3, 5, 7, 9, 10).
	require.Len(t, moves, 28)

	for _, m := range moves {
		i := movedMover(t, s.Positions, m.Positions)
		dst := m.Positions[i]
		require.True(t, topo.IsHallway(dst))
		assert.False(t, topo.IsDoor(int(dst)))

		_, depth := topo.Locate(s.Positions[i])
		assert.Equal(t, 0, depth, "only top movers may leave")

		steps := abs(topo.Column(s.Positions[i])-int(dst)) + 1
		assert.Equal(t, int64(steps)*topo.Energy(topo.KindOf(i)), m.Cost)
	}
}

func TestMoves_PureFunction(t *testing.T) {
	topo := standard(t, 2)
	s := mustState(t, topo, exampleStart...)
	before := s.Positions.Clone()

	buf := make([]core.State, 0, 4)
	first := core.Moves(topo, s, true, buf)
	second := core.Moves(topo, s, true, nil)

	assert.Equal(t, before, s.Positions)
	assert.Equal(t, first, second)
}

// TestMoves_SettledMoversStayPut walks a few thousand states reachable from
// the example and checks every generated move against the movement rules,
// in particular that a settled mover is never picked.
func TestMoves_SettledMoversStayPut(t *testing.T) {
	topo := standard(t, 2)
	start := mustState(t, topo, exampleStart...)

	seen := map[string]bool{start.Positions.Key(): true}
	queue := []core.State{start}
	for len(queue) > 0 && len(seen) < 2000 {
		s := queue[0]
		queue = queue[1:]

		for _, next := range core.Moves(topo, s, false, nil) {
			i := movedMover(t, s.Positions, next.Positions)
			from, to := s.Positions[i], next.Positions[i]

			require.False(t, isSettled(topo, s.Positions, i), "settled mover %d moved in %v", i, s.Positions)
			require.Greater(t, next.Cost, s.Cost)
			if topo.IsHallway(from) {
				room, _ := topo.Locate(to)
				require.False(t, topo.IsHallway(to), "hallway to hallway move in %v", s.Positions)
				require.Equal(t, topo.KindOf(i), room, "hallway mover entered a foreign room")
			}

			if key := next.Positions.Key(); !seen[key] {
				seen[key] = true
				queue = append(queue, next)
			}
		}
	}
	assert.GreaterOrEqual(t, len(seen), 2000)
}

// isSettled re-derives the settled rule from positions alone.
func isSettled(topo *core.Topology, p core.Positions, mover int) bool {
	if topo.IsHallway(p[mover]) {
		return false
	}
	room, depth := topo.Locate(p[mover])
	if room != topo.KindOf(mover) {
		return false
	}
	owner := map[core.Slot]int{}
	for i, s := range p {
		owner[s] = i
	}
	for d := depth + 1; d < topo.Depth(); d++ {
		o, ok := owner[topo.RoomSlot(room, d)]
		if !ok || topo.KindOf(o) != room {
			return false
		}
	}

	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
