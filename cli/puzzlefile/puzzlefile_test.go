package puzzlefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrgrid/colorlock/cli/puzzlefile"
)

func samplePuzzle() *puzzlefile.Puzzle {
	return &puzzlefile.Puzzle{
		Name:         "corridor",
		Walls:        [][]int{{0, 0, 1, 0, 0}},
		Active:       [][]int{{0, 0, 1, 0, 0}},
		Buttons:      [][]int{{0, 1, 0, 0, 0}},
		WallColors:   [][]int{{-1, -1, 3, -1, -1}},
		ButtonColors: [][]int{{-1, 3, -1, -1, -1}},
		TargetRow:    0,
		TargetCol:    4,
		StartRow:     0,
		StartCol:     0,
	}
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.json")

	want := samplePuzzle()
	require.NoError(t, puzzlefile.Save(path, want))

	got, err := puzzlefile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := puzzlefile.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_EmptyPuzzleRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")
	require.NoError(t, puzzlefile.Save(path, &puzzlefile.Puzzle{}))

	_, err := puzzlefile.Load(path)
	assert.ErrorIs(t, err, puzzlefile.ErrEmptyPuzzle)
}

func TestLoad_MalformedJSONErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := puzzlefile.Load(path)
	assert.Error(t, err)
}
