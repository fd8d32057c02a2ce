// Package grid defines the bitboard grid model shared by the rest of the
// colorlock search core: row masks for walls and buttons, per-cell button
// color, a precomputed heuristic table, and the bounds of the playing
// field.
//
// What
//
//   - Position packs a (row, col) pair into a single 12-bit value so that
//     it can be used directly as an array index and as a bit index within
//     a row mask.
//   - ToggleState is a bitmask of which colors have been toggled an odd
//     number of times since the start of a search.
//   - Grid is immutable once built: NewGrid deep-validates its inputs and
//     precomputes everything downstream components need in O(rows×cols).
//   - BlockedRow derives, for a given toggle state and row, which columns
//     are currently impassable.
//
// Why
//
//   - Representing each row as a uint64 lets every component that needs
//     "which cells are blocked/visited/reachable in this row" work with a
//     handful of machine words instead of a cell-by-cell loop; the only
//     component that still walks cell-by-cell is heuristic construction,
//     which runs once at NewGrid time.
//
// Complexity
//
//   - NewGrid:    O(rows×cols) time and memory.
//   - BlockedRow: O(popcount(state)), bounded by O(MaxColors).
//
// Errors
//
//   - ErrEmptyGrid:    rows or cols is zero.
//   - ErrOutOfRange:   rows or cols exceeds MaxRows/MaxCols.
//   - ErrNonRectangular: input arrays are not rows×cols in shape.
//   - ErrTargetOutOfRange: target coordinates fall outside the grid.
package grid
