package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrgrid/colorlock/grid"
)

func zeros(rows, cols int) [][]int {
	out := make([][]int, rows)
	for i := range out {
		out[i] = make([]int, cols)
	}
	return out
}

func TestNewGrid_EmptyRows(t *testing.T) {
	_, err := grid.NewGrid(nil, nil, nil, nil, nil, 0, 0)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestNewGrid_EmptyCols(t *testing.T) {
	walls := [][]int{{}}
	_, err := grid.NewGrid(walls, walls, walls, walls, walls, 0, 0)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestNewGrid_OutOfRange(t *testing.T) {
	walls := zeros(65, 1)
	active := zeros(65, 1)
	buttons := zeros(65, 1)
	colors := zeros(65, 1)
	_, err := grid.NewGrid(walls, active, buttons, colors, colors, 0, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

func TestNewGrid_NonRectangular(t *testing.T) {
	walls := [][]int{{0, 0}, {0}}
	active := zeros(2, 2)
	buttons := zeros(2, 2)
	colors := zeros(2, 2)
	_, err := grid.NewGrid(walls, active, buttons, colors, colors, 0, 0)
	require.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestNewGrid_TargetOutOfRange(t *testing.T) {
	walls := zeros(3, 3)
	_, err := grid.NewGrid(walls, walls, walls, walls, walls, 3, 0)
	require.ErrorIs(t, err, grid.ErrTargetOutOfRange)
}

func TestPosition_RowCol(t *testing.T) {
	p := grid.NewPosition(5, 7)
	assert.Equal(t, 5, p.Row())
	assert.Equal(t, 7, p.Col())
}

func TestToggleState_FlipAndToggled(t *testing.T) {
	var s grid.ToggleState
	assert.False(t, s.Toggled(3))
	s = s.Flip(3)
	assert.True(t, s.Toggled(3))
	assert.Equal(t, 1, s.PopCount())
	s = s.Flip(3)
	assert.False(t, s.Toggled(3))
	assert.Equal(t, 0, s.PopCount())
}

// TestBlockedRow_Invariant exercises the blocked-set invariant: toggling a
// color twice restores the row's blocked mask.
func TestBlockedRow_Invariant(t *testing.T) {
	rows, cols := 1, 5
	walls := zeros(rows, cols)
	active := zeros(rows, cols)
	buttons := zeros(rows, cols)
	wallColors := zeros(rows, cols)
	for i := range wallColors[0] {
		wallColors[0][i] = -1
	}
	buttonColors := zeros(rows, cols)

	walls[0][2] = 1
	active[0][2] = 1
	wallColors[0][2] = 3

	g, err := grid.NewGrid(walls, active, buttons, wallColors, buttonColors, 0, 4)
	require.NoError(t, err)

	base := g.BlockedRow(0, 0)
	assert.Equal(t, uint64(1<<2), base)

	toggled := g.BlockedRow(grid.ToggleState(1<<3), 0)
	assert.Equal(t, uint64(0), toggled)

	toggledTwice := g.BlockedRow(grid.ToggleState(0), 0)
	assert.Equal(t, base, toggledTwice)
}

func TestNewGrid_Heuristic_StraightLine(t *testing.T) {
	rows, cols := 1, 5
	walls := zeros(rows, cols)
	active := zeros(rows, cols)
	buttons := zeros(rows, cols)
	wallColors := zeros(rows, cols)
	buttonColors := zeros(rows, cols)

	g, err := grid.NewGrid(walls, active, buttons, wallColors, buttonColors, 0, 4)
	require.NoError(t, err)

	for col := 0; col <= 4; col++ {
		pos := grid.NewPosition(0, col)
		assert.Equal(t, uint16(4-col), g.H(pos))
	}
}

func TestNewGrid_Heuristic_PermanentWallBlocks(t *testing.T) {
	rows, cols := 1, 5
	walls := zeros(rows, cols)
	active := zeros(rows, cols)
	buttons := zeros(rows, cols)
	wallColors := zeros(rows, cols)
	for i := range wallColors[0] {
		wallColors[0][i] = -1
	}
	buttonColors := zeros(rows, cols)

	walls[0][2] = 1
	active[0][2] = 1
	wallColors[0][2] = grid.PermanentColor

	g, err := grid.NewGrid(walls, active, buttons, wallColors, buttonColors, 0, 4)
	require.NoError(t, err)

	assert.Equal(t, grid.Infinity, g.H(grid.NewPosition(0, 0)))
	assert.Equal(t, uint16(0), g.H(grid.NewPosition(0, 4)))
}
