// Package core models a burrow: a straight hallway with rooms hanging below
// it, each room a stack of fixed depth.
//
// Overview:
//
//   - Topology is immutable and built once per solve with functional options
//     (WithHallwayLength, WithDepth, WithDoors, WithEnergy). Standard(2) and
//     Standard(4) give the two classic burrows.
//   - Positions maps mover index → Slot and is the identity of a search node.
//     Mover i has kind i / Depth; kind k belongs in room k and pays Energy(k)
//     per step (10^k by default).
//   - Moves lists every legal single-mover move with its cost. Estimate is an
//     admissible, consistent lower bound used to order the search.
//
// Slot numbering (standard burrow, depth 2):
//
//	hallway:  0  1 [2] 3 [4] 5 [6] 7 [8] 9 10    [n] is a door cell
//	depth 0:       11    13    15    17
//	depth 1:       12    14    16    18
//
// A mover never stops on a door cell. A hallway mover only ever moves into
// its own room, and a settled mover never moves at all.
//
// Thread safety:
//
//   - Topology values are read-only after NewTopology and safe to share.
//   - Moves and Estimate are pure.
package core
