// Package flood implements the bit-parallel flood-fill expansion that
// drives every A* node expansion in package search: given a toggle state
// and a starting position, it finds every button reachable under the
// current wall configuration in a single sweep, and separately reports
// whether the target is reachable.
//
// What
//
//   - Expand(g, state, start, result) runs a BFS where each row is a uint64 mask,
//     so a whole row's worth of neighbor cells advances in O(1) machine
//     words instead of one bit at a time.
//   - Buttons act as sinks: the frontier does not propagate through them,
//     matching the puzzle rule that pressing a button ends the current
//     movement segment.
//   - The target is reported separately from the button list, unless the
//     target cell is itself a button, in which case it is a sink like any
//     other button and is only found via the button list; package search
//     recognizes it there.
//
// Why
//
//   - This is the one component invoked once per A* node expansion, so its
//     asymptotic cost (O(rows) per BFS step instead of O(cells)) dominates
//     total search time. Representing rows as bitmasks is not an
//     optimization layered on top of a simpler design — it is the design.
//
// Complexity
//
//   - O(rows * steps) where steps is bounded by rows*64 (a hard safety
//     cap on the BFS depth); in practice the frontier dies out in a
//     small number of steps for any realistic puzzle.
//
// Ordering
//
//   - All buttons at BFS depth d are emitted before any at depth d+1;
//     order within a depth is unspecified (row-ascending, column-ascending
//     in this implementation, but callers must not depend on that).
package flood
