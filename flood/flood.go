package flood

import (
	"math/bits"

	"github.com/nrgrid/colorlock/grid"
)

// ButtonHit is one button reached by a flood fill, together with the BFS
// step (movement cost) at which it was first touched.
type ButtonHit struct {
	Pos  grid.Position
	Step uint16
}

// Result holds the outcome of one Expand call. Expand truncates and
// refills Buttons in place, so callers must not retain it past the next
// Expand call that writes into the same Result.
type Result struct {
	Buttons       []ButtonHit
	TargetReached bool
	TargetCost    uint16
}

func (r *Result) reset() {
	r.Buttons = r.Buttons[:0]
	r.TargetReached = false
	r.TargetCost = 0
}

// Expander owns the scratch row-mask buffers reused across repeated
// Expand calls: allocating rows-sized slices once per Expander rather than
// once per Expand call keeps the hot path (invoked once per A* node
// expansion) allocation-free.
type Expander struct {
	blocked []uint64
	visited []uint64
	curr    []uint64
	next    []uint64
}

// NewExpander allocates scratch sized for a grid with the given row count.
func NewExpander(rows int) *Expander {
	return &Expander{
		blocked: make([]uint64, rows),
		visited: make([]uint64, rows),
		curr:    make([]uint64, rows),
		next:    make([]uint64, rows),
	}
}

// Expand runs a bit-parallel BFS from start under toggle-state state,
// writing results into result (which is reset at entry). Buttons are
// sinks: the frontier stops at them and they
// are emitted rather than propagated. The target is reported via
// result.TargetReached/TargetCost unless the target cell is itself a
// button, in which case it is treated as a sink like any other button and
// surfaces only in result.Buttons; TargetReached stays false.
func (e *Expander) Expand(g *grid.Grid, state grid.ToggleState, start grid.Position, result *Result) {
	result.reset()

	rows := g.Rows()
	oobMask := g.OOBMask()

	startRow, startCol := start.Row(), start.Col()
	targetPos := g.TargetPos()
	targetRow := targetPos.Row()
	targetBit := uint64(1) << uint(targetPos.Col())

	for row := 0; row < rows; row++ {
		e.blocked[row] = g.BlockedRow(state, row)
		e.visited[row] = 0
		e.curr[row] = 0
		e.next[row] = 0
	}
	e.visited[startRow] = uint64(1) << uint(startCol)
	e.curr[startRow] = uint64(1) << uint(startCol)

	activeRows := uint64(1) << uint(startRow)
	currWritten := activeRows

	var rowRangeMask uint64
	if rows == 64 {
		rowRangeMask = ^uint64(0)
	} else {
		rowRangeMask = (uint64(1) << uint(rows)) - 1
	}

	maxSteps := rows * 64
	for step := 1; step <= maxSteps; step++ {
		var nextActiveRows, nextWritten uint64

		workMask := (activeRows | (activeRows << 1) | (activeRows >> 1)) & rowRangeMask
		for wm := workMask; wm != 0; wm &= wm - 1 {
			row := bits.TrailingZeros64(wm)

			cur := e.curr[row]
			spread := ((cur << 1) | (cur >> 1)) & oobMask
			if row > 0 {
				spread |= e.curr[row-1]
			}
			if row < rows-1 {
				spread |= e.curr[row+1]
			}

			newBits := spread &^ e.blocked[row] &^ e.visited[row]
			if newBits == 0 {
				continue
			}
			e.visited[row] |= newBits

			btnHits := newBits & g.ButtonMask(row)
			for bh := btnHits; bh != 0; bh &= bh - 1 {
				col := bits.TrailingZeros64(bh)
				result.Buttons = append(result.Buttons, ButtonHit{
					Pos:  grid.NewPosition(row, col),
					Step: uint16(step),
				})
			}

			nonBtn := newBits &^ g.ButtonMask(row)
			if nonBtn != 0 {
				e.next[row] |= nonBtn
				nextActiveRows |= uint64(1) << uint(row)
				nextWritten |= uint64(1) << uint(row)
			}

			if row == targetRow && nonBtn&targetBit != 0 {
				result.TargetReached = true
				result.TargetCost = uint16(step)
			}
		}

		if nextActiveRows == 0 {
			break
		}
		if result.TargetReached {
			break
		}

		e.curr, e.next = e.next, e.curr
		for cw := currWritten; cw != 0; cw &= cw - 1 {
			row := bits.TrailingZeros64(cw)
			e.next[row] = 0
		}

		activeRows = nextActiveRows
		currWritten = nextWritten
	}
}
