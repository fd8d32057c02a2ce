package pathrecon

import (
	"github.com/nrgrid/colorlock/grid"
)

var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// ComputeBlocked fills out[row] with the blocked-cell mask for row under
// the given toggle state, for every row of g. out must have length
// g.Rows().
func ComputeBlocked(g *grid.Grid, state grid.ToggleState, out []uint64) {
	for row := 0; row < g.Rows(); row++ {
		out[row] = g.BlockedRow(state, row)
	}
}

type parentEntry struct {
	pos grid.Position
	gen uint16
}

// Walker reconstructs BFS path segments, reusing a flat parent table
// across calls via a generation tag rather than reallocating or zeroing
// it per segment.
type Walker struct {
	rows, cols int
	parent     []parentEntry
	gen        uint16
	queue      []grid.Position
}

// NewWalker allocates a Walker sized for a grid with the given dimensions.
func NewWalker(rows, cols int) *Walker {
	return &Walker{
		rows:   rows,
		cols:   cols,
		parent: make([]parentEntry, rows*64),
		queue:  make([]grid.Position, 0, rows*cols),
	}
}

// Segment finds the shortest walk from from to to under blocked (as
// produced by ComputeBlocked), refusing to pass through any button cell
// other than to itself. It returns the path including both endpoints, or
// nil if to is unreachable.
func (w *Walker) Segment(g *grid.Grid, blocked []uint64, from, to grid.Position) []grid.Position {
	if from == to {
		return []grid.Position{from}
	}

	w.gen++
	if w.gen == 0 {
		for i := range w.parent {
			w.parent[i] = parentEntry{}
		}
		w.gen = 1
	}
	curGen := w.gen

	w.queue = w.queue[:0]
	w.parent[from] = parentEntry{pos: from, gen: curGen}
	w.queue = append(w.queue, from)

	toRow, toCol := to.Row(), to.Col()
	found := false

	for head := 0; head < len(w.queue) && !found; head++ {
		cur := w.queue[head]
		row, col := cur.Row(), cur.Col()

		for _, off := range neighborOffsets {
			nr, nc := row+off[0], col+off[1]
			if nr < 0 || nr >= w.rows || nc < 0 || nc >= w.cols {
				continue
			}
			if blocked[nr]&(uint64(1)<<uint(nc)) != 0 {
				continue
			}

			nbrPos := grid.NewPosition(nr, nc)
			if w.parent[nbrPos].gen == curGen {
				continue
			}

			isDest := nr == toRow && nc == toCol
			isButton := g.ButtonMask(nr)&(uint64(1)<<uint(nc)) != 0
			if isButton && !isDest {
				continue
			}

			w.parent[nbrPos] = parentEntry{pos: cur, gen: curGen}
			if isDest {
				found = true
				break
			}
			w.queue = append(w.queue, nbrPos)
		}
	}

	if !found {
		return nil
	}

	var path []grid.Position
	for cur := to; cur != from; cur = w.parent[cur].pos {
		path = append(path, cur)
	}
	path = append(path, from)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
