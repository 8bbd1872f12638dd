// Package core_test provides runnable examples for the core package.
package core_test

import (
	"fmt"

	"github.com/katalvlaran/burrow/core"
)

// ExampleMoves lists the moves of an almost sorted burrow: one A waits in
// the hallway next to its room and can only walk home.
func ExampleMoves() {
	t, _ := core.Standard(2)
	s, _ := core.NewState(t, []core.Slot{1, 12, 13, 14, 15, 16, 17, 18})

	for _, m := range core.Moves(t, s, true, nil) {
		fmt.Println("A to slot", m.Positions[0], "cost", m.Cost, "solved", t.Solved(m.Positions))
	}

	// Output:
	// A to slot 11 cost 2 solved true
}

// ExampleNewTopology builds a two-room burrow with a short hallway.
func ExampleNewTopology() {
	t, err := core.NewTopology(
		core.WithHallwayLength(5),
		core.WithDoors(1, 3),
		core.WithDepth(1),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("movers:", t.Movers(), "slots:", t.Slots(), "energy:", t.Energy(0), t.Energy(1))

	// Output:
	// movers: 2 slots: 7 energy: 1 10
}
