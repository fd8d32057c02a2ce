package search_test

import (
	"testing"

	"github.com/nrgrid/colorlock/grid"
	"github.com/nrgrid/colorlock/search"
)

// BenchmarkSolve_OpenGrid measures the cost of a full search on an empty
// 64x64 grid, the cheapest case in terms of node count but still
// exercising the heap, visited table and flood expander end to end.
func BenchmarkSolve_OpenGrid(b *testing.B) {
	rows, cols := 64, 64
	g, err := grid.NewGrid(zeros(rows, cols), zeros(rows, cols), zeros(rows, cols),
		negOnes(rows, cols), negOnes(rows, cols), rows-1, cols-1)
	if err != nil {
		b.Fatal(err)
	}

	d := search.NewDriver(g)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Run(grid.NewPosition(0, 0)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_ScatteredButtons measures search cost when many buttons
// force repeated toggle-state transitions.
func BenchmarkSolve_ScatteredButtons(b *testing.B) {
	rows, cols := 32, 32
	walls := zeros(rows, cols)
	active := zeros(rows, cols)
	buttons := zeros(rows, cols)
	wallColors := negOnes(rows, cols)
	buttonColors := negOnes(rows, cols)

	for i := 0; i < 8; i++ {
		r, c := (i*5)%rows, (i*7)%cols
		buttons[r][c] = 1
		buttonColors[r][c] = i
	}

	g, err := grid.NewGrid(walls, active, buttons, wallColors, buttonColors, rows-1, cols-1)
	if err != nil {
		b.Fatal(err)
	}

	d := search.NewDriver(g)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Run(grid.NewPosition(0, 0)); err != nil {
			b.Fatal(err)
		}
	}
}
