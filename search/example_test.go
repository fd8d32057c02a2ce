package search_test

import (
	"fmt"

	"github.com/nrgrid/colorlock/grid"
	"github.com/nrgrid/colorlock/search"
)

// ExampleDriver_Run runs a single toggle-required puzzle: a wall at
// column 2 blocks the straight line to the target, and a button at
// column 1 controls it.
func ExampleDriver_Run() {
	rows, cols := 1, 5
	walls := make([][]int, rows)
	active := make([][]int, rows)
	buttons := make([][]int, rows)
	wallColors := make([][]int, rows)
	buttonColors := make([][]int, rows)
	for r := range walls {
		walls[r] = make([]int, cols)
		active[r] = make([]int, cols)
		buttons[r] = make([]int, cols)
		wallColors[r] = make([]int, cols)
		buttonColors[r] = make([]int, cols)
		for c := range walls[r] {
			wallColors[r][c] = -1
			buttonColors[r][c] = -1
		}
	}
	walls[0][2] = 1
	active[0][2] = 1
	wallColors[0][2] = 3
	buttons[0][1] = 1
	buttonColors[0][1] = 3

	g, err := grid.NewGrid(walls, active, buttons, wallColors, buttonColors, 0, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	d := search.NewDriver(g)
	res, err := d.Run(grid.NewPosition(0, 0))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(res.Found, res.TotalCost, len(res.Waypoints))
	// Output:
	// true 4 1
}
