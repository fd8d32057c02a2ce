package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrgrid/colorlock/grid"
	"github.com/nrgrid/colorlock/solver"
)

func TestRenderGrid_MarksWallsButtonsAndTarget(t *testing.T) {
	rows, cols := 1, 3
	walls := [][]int{{0, 1, 0}}
	active := [][]int{{0, 1, 0}}
	buttons := [][]int{{1, 0, 0}}
	wallColors := [][]int{{-1, 2, -1}}
	buttonColors := [][]int{{2, -1, -1}}

	g, err := grid.NewGrid(walls, active, buttons, wallColors, buttonColors, 0, cols-1)
	require.NoError(t, err)

	out := renderGrid(g, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, rows)
	assert.Contains(t, lines[0], "2") // button color id
	assert.Contains(t, lines[0], "#") // active wall
	assert.Contains(t, lines[0], "*") // target
}

func TestRenderGrid_HighlightsPathCells(t *testing.T) {
	rows, cols := 1, 3
	g, err := grid.NewGrid([][]int{{0, 0, 0}}, [][]int{{0, 0, 0}}, [][]int{{0, 0, 0}},
		[][]int{{-1, -1, -1}}, [][]int{{-1, -1, -1}}, 0, cols-1)
	require.NoError(t, err)

	path := []solver.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	out := renderGrid(g, path)
	assert.Contains(t, out, "+")
}
