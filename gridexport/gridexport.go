package gridexport

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"

	"github.com/nrgrid/colorlock/grid"
)

// Vertex is one walkable cell.
type Vertex struct {
	Pos      grid.Position
	Row, Col int
	IsButton bool
	IsTarget bool
}

// Edge is a unit-weight link between two orthogonally adjacent, unblocked
// cells. From is always the lexicographically smaller packed position, so
// each undirected pair appears once.
type Edge struct {
	From, To grid.Position
}

// CellGraph is a read-only snapshot of which cells are walkable, and how
// they connect, under one fixed toggle state.
type CellGraph struct {
	Vertices []Vertex
	Edges    []Edge
}

var neighborOffsets = [2][2]int{{0, 1}, {1, 0}}

// Graph builds a CellGraph for g under state: a cell is a vertex iff it is
// not in g.BlockedRow(state, row); edges connect a vertex to its east and
// south neighbors (enough to cover every adjacent pair once under 4-
// connectivity) when the neighbor is also unblocked.
func Graph(g *grid.Grid, state grid.ToggleState) *CellGraph {
	rows, cols := g.Rows(), g.Cols()
	cg := &CellGraph{
		Vertices: make([]Vertex, 0, rows*cols),
		Edges:    make([]Edge, 0, rows*cols),
	}

	blocked := make([]uint64, rows)
	for row := 0; row < rows; row++ {
		blocked[row] = g.BlockedRow(state, row)
	}
	target := g.TargetPos()

	walkable := func(row, col int) bool {
		if row < 0 || row >= rows || col < 0 || col >= cols {
			return false
		}
		return blocked[row]&(uint64(1)<<uint(col)) == 0
	}

	for row := 0; row < rows; row++ {
		free := ^blocked[row] & ((uint64(1) << uint(cols)) - 1)
		if cols == 64 {
			free = ^blocked[row]
		}
		for free != 0 {
			col := bits.TrailingZeros64(free)
			free &= free - 1

			pos := grid.NewPosition(row, col)
			cg.Vertices = append(cg.Vertices, Vertex{
				Pos:      pos,
				Row:      row,
				Col:      col,
				IsButton: g.CellColor(pos) != grid.NoColor,
				IsTarget: pos == target,
			})

			for _, d := range neighborOffsets {
				nr, nc := row+d[0], col+d[1]
				if !walkable(nr, nc) {
					continue
				}
				cg.Edges = append(cg.Edges, Edge{From: pos, To: grid.NewPosition(nr, nc)})
			}
		}
	}

	sort.Slice(cg.Vertices, func(i, j int) bool { return cg.Vertices[i].Pos < cg.Vertices[j].Pos })
	sort.Slice(cg.Edges, func(i, j int) bool { return cg.Edges[i].From < cg.Edges[j].From })

	return cg
}

// DOT renders the graph as Graphviz source. Button cells are filled
// yellow, the target cell is filled green.
func (cg *CellGraph) DOT() string {
	var b strings.Builder
	b.WriteString("graph colorlock {\n")
	for _, v := range cg.Vertices {
		label := fmt.Sprintf("%d,%d", v.Row, v.Col)
		switch {
		case v.IsTarget:
			fmt.Fprintf(&b, "  %q [label=%q style=filled fillcolor=green];\n", label, label)
		case v.IsButton:
			fmt.Fprintf(&b, "  %q [label=%q style=filled fillcolor=yellow];\n", label, label)
		default:
			fmt.Fprintf(&b, "  %q [label=%q];\n", label, label)
		}
	}
	for _, e := range cg.Edges {
		fmt.Fprintf(&b, "  %q -- %q;\n", posLabel(e.From), posLabel(e.To))
	}
	b.WriteString("}\n")
	return b.String()
}

func posLabel(p grid.Position) string {
	return fmt.Sprintf("%d,%d", p.Row(), p.Col())
}
