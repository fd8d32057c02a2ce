package solver

import (
	"github.com/nrgrid/colorlock/grid"
	"github.com/nrgrid/colorlock/pathrecon"
	"github.com/nrgrid/colorlock/search"
)

// Solver holds one compiled grid and the scratch state needed to answer
// repeated Solve calls against it without reallocating per call.
type Solver struct {
	grid    *grid.Grid
	driver  *search.Driver
	walker  *pathrecon.Walker
	blocked []uint64
}

// New validates walls/active/buttons/wallColors/buttonColors (each a
// height x width array matching package grid's model) and the target
// coordinates, then compiles them into a Solver. The returned error, if
// any, is a sentinel from package grid.
//
// Preconditions (checked by package grid, in order):
//  1. height and width must both be at least 1 and at most 64.
//  2. Every input array's shape must be height x width.
//  3. targetY, targetX must be in bounds.
func New(walls, active, buttons, wallColors, buttonColors [][]int, targetY, targetX int, opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, err := grid.NewGrid(walls, active, buttons, wallColors, buttonColors, targetY, targetX,
		grid.Options{PermanentColor: cfg.PermanentColor})
	if err != nil {
		return nil, err
	}

	return &Solver{
		grid:    g,
		driver:  search.NewDriver(g, search.WithVisitedCapacity(cfg.VisitedCapacity)),
		walker:  pathrecon.NewWalker(g.Rows(), g.Cols()),
		blocked: make([]uint64, g.Rows()),
	}, nil
}

// Solve returns an ordered sequence of cells from (startY, startX) to the
// target, inclusive of both endpoints, or an empty slice if no sequence
// of toggles makes the target reachable. Any search-time error is
// swallowed; use SolveErr to observe it.
func (s *Solver) Solve(startY, startX int) []Cell {
	cells, _ := s.SolveErr(startY, startX)
	return cells
}

// SolveErr behaves like Solve but also returns the underlying error from
// package search, if the search could not run to completion (visited
// table saturation; New sets no cancellation context).
func (s *Solver) SolveErr(startY, startX int) ([]Cell, error) {
	start := grid.NewPosition(startY, startX)
	target := s.grid.TargetPos()

	if start == target {
		return []Cell{{Row: startY, Col: startX}}, nil
	}

	res, err := s.driver.Run(start)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, nil
	}

	full := make([]grid.Position, 0, len(res.Waypoints)*4+2)
	appendSeg := func(seg []grid.Position) {
		if len(seg) == 0 {
			return
		}
		if len(full) > 0 && full[len(full)-1] == seg[0] {
			seg = seg[1:]
		}
		full = append(full, seg...)
	}

	segState := grid.ToggleState(0)
	pathrecon.ComputeBlocked(s.grid, segState, s.blocked)
	prev := start

	for _, wp := range res.Waypoints {
		appendSeg(s.walker.Segment(s.grid, s.blocked, prev, wp))

		if cid := s.grid.CellColor(wp); cid != grid.NoColor {
			segState = segState.Flip(int(cid))
			pathrecon.ComputeBlocked(s.grid, segState, s.blocked)
		}
		prev = wp
	}

	if prev != target {
		appendSeg(s.walker.Segment(s.grid, s.blocked, prev, target))
	}

	cells := make([]Cell, len(full))
	for i, p := range full {
		cells[i] = Cell{Row: p.Row(), Col: p.Col()}
	}
	return cells, nil
}

// Version reports colorlock's build identifier.
func Version() string {
	return version
}

// Grid exposes the compiled grid, for callers such as package gridexport
// and the CLI's render/graph subcommands that need it directly instead of
// re-deriving grid state from the original puzzle input.
func (s *Solver) Grid() *grid.Grid {
	return s.grid
}
