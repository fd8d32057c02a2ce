package grid

import (
	"fmt"
	"math/bits"

	"github.com/nrgrid/colorlock/heuristic"
)

// Grid is the immutable bitboard grid model. It is built once by NewGrid
// and never mutated afterward; every search-core component that needs
// per-row or per-cell information reads it concurrently-safely because it
// never changes.
type Grid struct {
	rows, cols int

	// initialActive[row] is the row mask of cells blocking movement at
	// toggle-state zero.
	initialActive []uint64

	// colorMasks[row][color] is the row mask of wall cells of that color,
	// active or not.
	colorMasks [][MaxColors]uint64

	// buttonMasks[row] is the row mask of button cells.
	buttonMasks []uint64

	// cellColor[pos] is the color a button at pos toggles, or NoColor.
	cellColor []uint8

	// hMap[pos] is the precomputed heuristic distance from pos to target,
	// or Infinity if pos cannot reach target through permanent walls alone.
	hMap []uint16

	// oobMask clips east/west bit-shifts to valid columns.
	oobMask uint64

	targetPos Position
}

// Options configures the permanent-wall color convention used by the
// heuristic builder invoked from NewGrid. NewGrid uses DefaultOptions only
// when no Options is passed; a passed Options is used as is.
type Options struct {
	// PermanentColor is the wall color id treated as never-toggled for
	// heuristic purposes. Color 0 is a legitimate color, so the zero
	// Options value selects color 0, not PermanentColor (1).
	PermanentColor int
}

// DefaultOptions returns the Options NewGrid uses when none are supplied:
// PermanentColor = PermanentColor (the source's convention, color id 1).
func DefaultOptions() Options {
	return Options{PermanentColor: PermanentColor}
}

// NewGrid validates and builds an immutable Grid from five parallel
// rows x cols arrays plus target coordinates, matching the package's
// external-interface contract.
//
// walls, active, and buttons are treated as "non-zero means true". wallColors
// and buttonColors carry color ids in [0, MaxColors); any other value
// (including negative) means "no color" for walls, or "not a button" for
// buttonColors when also buttons[y][x] is set.
//
// Returns ErrEmptyGrid, ErrOutOfRange, ErrNonRectangular, or
// ErrTargetOutOfRange for invalid input. Complexity: O(rows*cols).
func NewGrid(walls, active, buttons [][]int, wallColors, buttonColors [][]int, targetY, targetX int, opts ...Options) (*Grid, error) {
	rows := len(walls)
	if rows == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(walls[0])
	if cols == 0 {
		return nil, ErrEmptyGrid
	}
	if rows > MaxRows || cols > MaxCols {
		return nil, ErrOutOfRange
	}
	for _, arr := range [][][]int{walls, active, buttons, wallColors, buttonColors} {
		if err := checkShape(arr, rows, cols); err != nil {
			return nil, err
		}
	}
	if targetY < 0 || targetY >= rows || targetX < 0 || targetX >= cols {
		return nil, ErrTargetOutOfRange
	}

	opt := DefaultOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	g := &Grid{
		rows:          rows,
		cols:          cols,
		initialActive: make([]uint64, rows),
		colorMasks:    make([][MaxColors]uint64, rows),
		buttonMasks:   make([]uint64, rows),
		cellColor:     make([]uint8, rows*64),
		hMap:          make([]uint16, rows*64),
		targetPos:     NewPosition(targetY, targetX),
	}
	if cols == 64 {
		g.oobMask = ^uint64(0)
	} else {
		g.oobMask = (uint64(1) << uint(cols)) - 1
	}
	for i := range g.cellColor {
		g.cellColor[i] = NoColor
	}

	permWalls := make([]uint64, rows)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			bit := uint64(1) << uint(col)
			isWall := walls[row][col] != 0
			isActive := active[row][col] != 0
			isButton := buttons[row][col] != 0
			wcolor := wallColors[row][col]
			bcolor := buttonColors[row][col]

			if isWall {
				if wcolor >= 0 && wcolor < MaxColors {
					g.colorMasks[row][wcolor] |= bit
				}
				if isActive {
					g.initialActive[row] |= bit
				}
				if wcolor == opt.PermanentColor {
					permWalls[row] |= bit
				}
			}

			if isButton && bcolor >= 0 && bcolor < MaxColors {
				g.buttonMasks[row] |= bit
				g.cellColor[NewPosition(row, col)] = uint8(bcolor)
			}
		}
	}

	g.hMap = heuristic.Build(rows, cols, permWalls, uint16(g.targetPos))

	return g, nil
}

func checkShape(arr [][]int, rows, cols int) error {
	if len(arr) != rows {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrNonRectangular, rows, len(arr))
	}
	for i, row := range arr {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cols, expected %d", ErrNonRectangular, i, len(row), cols)
		}
	}
	return nil
}

// Rows returns the grid's row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid's column count.
func (g *Grid) Cols() int { return g.cols }

// TargetPos returns the packed target position.
func (g *Grid) TargetPos() Position { return g.targetPos }

// OOBMask returns the mask of valid columns, used to clip east/west shifts.
func (g *Grid) OOBMask() uint64 { return g.oobMask }

// ButtonMask returns the button-cell row mask for row.
func (g *Grid) ButtonMask(row int) uint64 { return g.buttonMasks[row] }

// CellColor returns the color a button at pos toggles, or NoColor if pos is
// not a button cell.
func (g *Grid) CellColor(pos Position) uint8 { return g.cellColor[pos] }

// H returns the precomputed heuristic distance from pos to the target, or
// Infinity if unreachable through permanent walls alone.
func (g *Grid) H(pos Position) uint16 { return g.hMap[pos] }

// BlockedRow returns the set of columns in row that are impassable under
// toggle-state state: initialActive XOR the color masks of every toggled
// color, so flipping a color's bit toggles exactly the walls of that color.
func (g *Grid) BlockedRow(state ToggleState, row int) uint64 {
	blocked := g.initialActive[row]
	masks := &g.colorMasks[row]
	ws := uint64(state)
	for ws != 0 {
		c := bits.TrailingZeros64(ws)
		blocked ^= masks[c]
		ws &= ws - 1
	}
	return blocked
}
