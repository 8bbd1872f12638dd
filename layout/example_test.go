// Package layout_test provides runnable examples for the layout package.
package layout_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/burrow/layout"
)

// ExampleUnfold shows the depth-4 diagram built from the depth-2 one.
func ExampleUnfold() {
	lines := layout.Lines(`#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########`)

	unfolded, err := layout.Unfold(lines)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(strings.Join(unfolded, "\n"))

	// Output:
	// #############
	// #...........#
	// ###B#C#B#D###
	//   #D#C#B#A#
	//   #D#B#A#C#
	//   #A#D#C#A#
	//   #########
}
