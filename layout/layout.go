// Package layout turns the textual burrow diagram into an initial
// core.State and back.
//
// The diagram is a wall row, a hallway row, one row per room depth and a
// closing wall row:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// Hallway cell c is read from column c+1 of the hallway row; room r is read
// from column Door(r)+1 of the room rows. Letters 'A', 'B', ... name kinds
// 0, 1, ...; '.' marks a free cell.
package layout

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/burrow/core"
)

// FoldedRows are the two rows spliced below the first room row of a depth-2
// diagram to produce the depth-4 puzzle.
var FoldedRows = [2]string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// Lines splits s into rows, dropping carriage returns and trailing blank rows.
func Lines(s string) []string {
	rows := strings.Split(strings.ReplaceAll(s, "\r", ""), "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	return rows
}

// Unfold returns a copy of a depth-2 diagram with FoldedRows inserted after
// its first room row. The input must have at least its wall, hallway and
// first room rows.
func Unfold(lines []string) ([]string, error) {
	if len(lines) < 3 {
		return nil, fmt.Errorf("%w: %d rows, need at least 3 to unfold", core.ErrMalformedInput, len(lines))
	}
	out := make([]string, 0, len(lines)+len(FoldedRows))
	out = append(out, lines[:3]...)
	out = append(out, FoldedRows[:]...)
	out = append(out, lines[3:]...)

	return out, nil
}

// Parse reads a diagram laid out for t and returns the initial State.
//
// Movers are numbered by kind: the movers of kind k get indices
// k*Depth .. k*Depth+Depth-1 in reading order (hallway first, then rooms
// shallow to deep, left to right).
//
// Every failure wraps core.ErrMalformedInput: missing rows or columns,
// unknown characters, a gap under a mover in a room, a kind with a count
// other than Depth, and anything core.NewState rejects.
func Parse(lines []string, t *core.Topology) (core.State, error) {
	depth, rooms, hall := t.Depth(), t.Rooms(), t.HallwayLength()
	if len(lines) < 2+depth {
		return core.State{}, fmt.Errorf("%w: %d rows, need %d", core.ErrMalformedInput, len(lines), 2+depth)
	}

	b := builder{t: t, positions: make([]core.Slot, t.Movers()), placed: make([]int, rooms)}

	// 1) Hallway row.
	row := lines[1]
	if len(row) < hall+2 {
		return core.State{}, fmt.Errorf("%w: hallway row has %d columns, need %d", core.ErrMalformedInput, len(row), hall+2)
	}
	for c := 0; c < hall; c++ {
		if err := b.place(row[c+1], core.Slot(c), 1, c+1); err != nil {
			return core.State{}, err
		}
	}

	// 2) Room rows, shallow to deep. A room fills from the bottom up, so
	//    a free cell may not sit under a mover.
	filled := make([]bool, rooms)
	for d := 0; d < depth; d++ {
		row = lines[2+d]
		for r := 0; r < rooms; r++ {
			col := t.Door(r) + 1
			if col >= len(row) {
				return core.State{}, fmt.Errorf("%w: row %d has no column %d for room %d", core.ErrMalformedInput, 2+d, col, r)
			}
			ch := row[col]
			if ch == '.' {
				if filled[r] {
					return core.State{}, fmt.Errorf("%w: room %d has a free cell under a mover at depth %d", core.ErrMalformedInput, r, d)
				}
				continue
			}
			filled[r] = true
			if err := b.place(ch, t.RoomSlot(r, d), 2+d, col); err != nil {
				return core.State{}, err
			}
		}
	}

	// 3) Every kind must fill exactly one room.
	for k, n := range b.placed {
		if n != depth {
			return core.State{}, fmt.Errorf("%w: %d movers of kind %c, need %d", core.ErrMalformedInput, n, kindLetter(k), depth)
		}
	}

	return core.NewState(t, b.positions)
}

// builder assigns mover indices while a diagram is read.
type builder struct {
	t         *core.Topology
	positions []core.Slot
	placed    []int // movers placed so far, per kind
}

// place records the character at (line, col) occupying slot.
func (b *builder) place(ch byte, slot core.Slot, line, col int) error {
	if ch == '.' {
		return nil
	}
	k := int(ch) - 'A'
	if k < 0 || k >= b.t.Rooms() {
		return fmt.Errorf("%w: unexpected %q at row %d column %d", core.ErrMalformedInput, ch, line, col)
	}
	if b.placed[k] == b.t.Depth() {
		return fmt.Errorf("%w: more than %d movers of kind %c", core.ErrMalformedInput, b.t.Depth(), ch)
	}
	b.positions[k*b.t.Depth()+b.placed[k]] = slot
	b.placed[k]++

	return nil
}

// Render draws p on t as a diagram Parse accepts. Trailing spaces are trimmed.
func Render(t *core.Topology, p core.Positions) string {
	hall, depth := t.HallwayLength(), t.Depth()
	width := hall + 2
	left, right := t.Door(0), t.Door(t.Rooms()-1)+2

	cells := make(map[core.Slot]byte, len(p))
	for i, s := range p {
		cells[s] = kindLetter(t.KindOf(i))
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("#", width))
	sb.WriteByte('\n')

	sb.WriteByte('#')
	for c := 0; c < hall; c++ {
		sb.WriteByte(cellOr(cells, core.Slot(c)))
	}
	sb.WriteString("#\n")

	for d := 0; d <= depth; d++ {
		row := []byte(strings.Repeat(" ", width))
		for c := left; c <= right && c < width; c++ {
			row[c] = '#'
		}
		if d == 0 {
			row = []byte(strings.Repeat("#", width))
		}
		if d < depth {
			for r := 0; r < t.Rooms(); r++ {
				row[t.Door(r)+1] = cellOr(cells, t.RoomSlot(r, d))
			}
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}

func cellOr(cells map[core.Slot]byte, s core.Slot) byte {
	if ch, ok := cells[s]; ok {
		return ch
	}

	return '.'
}

func kindLetter(k int) byte {
	return byte('A' + k)
}
