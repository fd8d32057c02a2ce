package search

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/nrgrid/colorlock/flood"
	"github.com/nrgrid/colorlock/grid"
	"github.com/nrgrid/colorlock/visited"
)

// ctxCheckInterval is how many heap pops pass between context
// cancellation checks, keeping the check off the hottest part of the
// loop while still making cancellation responsive.
const ctxCheckInterval = 256

// Driver runs repeated A* searches over a fixed grid, reusing its scratch
// buffers (node pool, open heap, visited table, flood expander) across
// calls to Run.
type Driver struct {
	grid     *grid.Grid
	expander *flood.Expander
	vis      *visited.Table
	ctx      context.Context

	pool []node
	open openHeap
}

// NewDriver builds a Driver for g. The grid is assumed fixed for the
// Driver's lifetime; wall toggles are expressed as search-time state, not
// grid mutation.
func NewDriver(g *grid.Grid, opts ...Option) *Driver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Driver{
		grid:     g,
		expander: flood.NewExpander(g.Rows()),
		vis:      visited.NewTable(cfg.VisitedCapacity),
		ctx:      cfg.Ctx,
		pool:     make([]node, 0, cfg.PoolCapacity),
		open:     make(openHeap, 0, cfg.HeapCapacity),
	}
}

// Run finds a minimum-cost sequence of button presses from start to the
// grid's target. It reports Found=false with a zero-value Result if no
// path exists, ErrVisitedTableFull if the search exhausts the visited
// table's capacity, and ErrCanceled if its context is done before the
// search completes.
func (d *Driver) Run(start grid.Position) (Result, error) {
	target := d.grid.TargetPos()
	if start == target {
		return Result{Found: true}, nil
	}

	d.pool = d.pool[:0]
	d.open = d.open[:0]
	d.vis.ResetForSearch()

	startH := d.grid.H(start)
	d.pool = append(d.pool, node{state: 0, parent: noParent, pos: start, g: 0})
	heap.Push(&d.open, packEntry(startH, 0))
	if _, err := d.vis.InsertOrUpdate(0, start, 0); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrVisitedTableFull, err)
	}

	const noBest = ^uint32(0)
	bestIndex := noBest
	bestTotal := grid.Infinity

	var res flood.Result
	for pops := 0; d.open.Len() > 0; pops++ {
		if pops%ctxCheckInterval == 0 {
			select {
			case <-d.ctx.Done():
				return Result{}, fmt.Errorf("%w: %w", ErrCanceled, d.ctx.Err())
			default:
			}
		}

		topF, idx := unpackEntry(heap.Pop(&d.open).(uint64))
		if topF >= bestTotal {
			break
		}

		n := d.pool[idx]
		if d.vis.Get(n.state, n.pos) < n.g {
			continue
		}

		d.expander.Expand(d.grid, n.state, n.pos, &res)

		if res.TargetReached {
			total := n.g + res.TargetCost
			if total < bestTotal {
				bestTotal = total
				bestIndex = idx
			}
		}

		for _, bh := range res.Buttons {
			// A button sitting on the target is the destination first: a
			// press there completes a path at cost n.g+bh.Step, whatever
			// color it also controls, and no successor node is queued
			// from it.
			if bh.Pos == target {
				total := n.g + bh.Step
				if total < bestTotal {
					terminalIdx := uint32(len(d.pool))
					d.pool = append(d.pool, node{state: n.state, parent: idx, pos: bh.Pos, g: total})
					bestTotal = total
					bestIndex = terminalIdx
				}
				continue
			}

			cid := d.grid.CellColor(bh.Pos)
			if cid == grid.NoColor {
				continue
			}

			newState := n.state.Flip(int(cid))
			nbrG := n.g + bh.Step
			nbrH := d.grid.H(bh.Pos)
			if uint32(nbrG)+uint32(nbrH) >= uint32(bestTotal) {
				continue
			}

			ok, err := d.vis.InsertOrUpdate(newState, bh.Pos, nbrG)
			if err != nil {
				return Result{}, fmt.Errorf("%w: %w", ErrVisitedTableFull, err)
			}
			if !ok {
				continue
			}

			newIdx := uint32(len(d.pool))
			d.pool = append(d.pool, node{state: newState, parent: idx, pos: bh.Pos, g: nbrG})
			heap.Push(&d.open, packEntry(nbrG+nbrH, newIdx))
		}
	}

	if bestIndex == noBest {
		return Result{}, nil
	}

	return Result{
		Found:     true,
		Waypoints: d.backtrack(bestIndex),
		TotalCost: bestTotal,
	}, nil
}

// backtrack walks the parent chain from goalIndex back to the root,
// returning the waypoint positions in press order with the start position
// (the root of the chain) dropped.
func (d *Driver) backtrack(goalIndex uint32) []grid.Position {
	var chain []grid.Position
	for i := goalIndex; i != noParent; i = d.pool[i].parent {
		chain = append(chain, d.pool[i].pos)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	if len(chain) > 0 {
		chain = chain[1:]
	}
	return chain
}
