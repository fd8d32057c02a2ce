package solver

import "github.com/nrgrid/colorlock/grid"

// version is the module's build identifier, surfaced by Version and by
// the CLI's --version flag.
const version = "colorlock v0.1.0"

// Cell is one (row, col) step of a solved path.
type Cell struct {
	Row int
	Col int
}

// Options configures New's grid construction and the Driver scratch it
// wires up underneath.
type Options struct {
	PermanentColor  int
	VisitedCapacity int
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns New's defaults: grid.PermanentColor for the
// permanent-wall convention, and visited.DefaultCapacity (selected by
// passing 0 through) for the visited table.
func DefaultOptions() Options {
	return Options{
		PermanentColor:  grid.PermanentColor,
		VisitedCapacity: 0,
	}
}

// WithPermanentColor overrides which wall-color id is treated as
// permanent (never toggled) for heuristic purposes.
func WithPermanentColor(c int) Option {
	return func(o *Options) { o.PermanentColor = c }
}

// WithVisitedCapacity overrides the search driver's visited table
// capacity, in case the default (raised well above the original 2048
// slots) still isn't enough for an unusually dense puzzle.
func WithVisitedCapacity(n int) Option {
	return func(o *Options) { o.VisitedCapacity = n }
}
