// Package burrow finds the least energy needed to sort a burrow: a straight
// hallway with rooms hanging below it, each room a stack of movers that must
// end up in the room of their kind.
//
// The module is organized in three packages and one command:
//
//	core/       - Topology, Positions, State; the move rules (Moves) and the
//	              admissible estimate (Estimate)
//	search/     - best-first search (Dijkstra or A*) returning the minimal cost
//	layout/     - reads and draws the textual diagram; Unfold builds the
//	              depth-4 puzzle
//	cmd/burrow  - command-line front end
//
// Quick example:
//
//	#############
//	#...........#
//	###B#C#B#D###    minimal energy 12521
//	  #A#D#C#A#
//	  #########
//
// Each step costs 1, 10, 100 or 1000 energy for kinds A, B, C and D. Movers
// never stop on the hallway cell right above a door, never move from the
// hallway into a room other than their own, and once in the hallway only
// move again to enter their room.
package burrow
