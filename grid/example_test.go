package grid_test

import (
	"fmt"

	"github.com/nrgrid/colorlock/grid"
)

// ExampleNewGrid demonstrates building a 1x5 grid with a single active
// wall of color 3 and reading the blocked mask before and after toggling
// that color.
func ExampleNewGrid() {
	rows, cols := 1, 5
	walls := [][]int{{0, 0, 1, 0, 0}}
	active := [][]int{{0, 0, 1, 0, 0}}
	buttons := [][]int{{0, 0, 0, 0, 0}}
	wallColors := [][]int{{-1, -1, 3, -1, -1}}
	buttonColors := [][]int{{-1, -1, -1, -1, -1}}

	g, err := grid.NewGrid(walls, active, buttons, wallColors, buttonColors, 0, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = rows
	_ = cols

	fmt.Println("blocked at state 0:", g.BlockedRow(0, 0))
	fmt.Println("blocked after toggling color 3:", g.BlockedRow(grid.ToggleState(1<<3), 0))

	// Output:
	// blocked at state 0: 4
	// blocked after toggling color 3: 0
}
