package grid

import (
	"errors"
	"math/bits"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the grid has zero rows or zero columns.
	ErrEmptyGrid = errors.New("grid: rows and cols must both be at least 1")

	// ErrOutOfRange indicates rows or cols exceeds the 64x64 bound.
	ErrOutOfRange = errors.New("grid: rows and cols must not exceed 64")

	// ErrNonRectangular indicates an input array's shape does not match rows x cols.
	ErrNonRectangular = errors.New("grid: input array shape does not match rows x cols")

	// ErrTargetOutOfRange indicates the target coordinates lie outside the grid.
	ErrTargetOutOfRange = errors.New("grid: target coordinates outside grid bounds")
)

// MaxRows is the largest number of rows a Grid may have; a row is a uint64
// bitmask, so this is also the hard ceiling on rows regardless of MaxCols.
const MaxRows = 64

// MaxCols is the largest number of columns a Grid may have; columns are bit
// positions within a row mask.
const MaxCols = 64

// MaxColors is the number of distinct wall/button colors supported. A
// ToggleState uses one bit per color, bits [0, MaxColors).
const MaxColors = 8

// NoColor marks a cell as not being a button.
const NoColor = 0xFF

// PermanentColor is the color id the heuristic builder treats as never
// toggled. It is a naming convention inherited from the source puzzle, not
// a hard-coded magic number sprinkled through the codebase: every call
// site that cares reads this constant.
const PermanentColor = 1

// Infinity is the sentinel heuristic/step distance meaning "unreachable".
const Infinity = uint16(0xFFFF)

// Position packs a (row, col) cell address into row*64+col, matching the
// original source's packed uint16 so BlockedRow-style bit math and array
// indexing share one representation.
type Position uint16

// NewPosition packs a row and column into a Position. Callers must ensure
// 0 <= row < MaxRows and 0 <= col < MaxCols; NewPosition does not validate
// against a particular Grid's bounds.
func NewPosition(row, col int) Position {
	return Position(row*64 + col)
}

// Row returns the packed position's row.
func (p Position) Row() int { return int(p) >> 6 }

// Col returns the packed position's column.
func (p Position) Col() int { return int(p) & 63 }

// ToggleState is a bitmask of which colors have been toggled an odd number
// of times since the start of a search. Only bits [0, MaxColors) are ever
// meaningfully set.
type ToggleState uint64

// Toggled reports whether color has been toggled an odd number of times.
func (s ToggleState) Toggled(color int) bool {
	return s&(1<<uint(color)) != 0
}

// Flip returns the state with color's bit flipped.
func (s ToggleState) Flip(color int) ToggleState {
	return s ^ (ToggleState(1) << uint(color))
}

// PopCount returns the number of toggled colors, i.e. bits.OnesCount64.
func (s ToggleState) PopCount() int {
	return bits.OnesCount64(uint64(s))
}
