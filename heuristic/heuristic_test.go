package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nrgrid/colorlock/heuristic"
)

func TestBuild_OpenGrid(t *testing.T) {
	rows, cols := 3, 3
	perm := make([]uint64, rows)
	target := uint16(2*64 + 2)

	dist := heuristic.Build(rows, cols, perm, target)

	assert.Equal(t, uint16(0), dist[target])
	assert.Equal(t, uint16(4), dist[0*64+0]) // (0,0) to (2,2): Manhattan 4
	assert.Equal(t, uint16(1), dist[2*64+1])
	assert.Equal(t, uint16(1), dist[1*64+2])
}

func TestBuild_PermanentWallBlocksPath(t *testing.T) {
	rows, cols := 1, 5
	perm := make([]uint64, rows)
	perm[0] = 1 << 2 // column 2 permanently blocked

	target := uint16(0*64 + 4)
	dist := heuristic.Build(rows, cols, perm, target)

	assert.Equal(t, heuristic.Infinity, dist[0*64+0])
	assert.Equal(t, heuristic.Infinity, dist[0*64+1])
	assert.Equal(t, uint16(0), dist[0*64+4])
}

func TestBuild_UnreachableCellsStayInfinite(t *testing.T) {
	rows, cols := 2, 2
	perm := make([]uint64, rows)
	perm[0] = 1 << 1
	perm[1] = 1 << 1

	target := uint16(0*64 + 0)
	dist := heuristic.Build(rows, cols, perm, target)

	assert.Equal(t, heuristic.Infinity, dist[0*64+1])
	assert.Equal(t, heuristic.Infinity, dist[1*64+1])
}
