package search

import (
	"container/heap"
	"context"

	"github.com/nrgrid/colorlock/grid"
)

// Options configures a Driver's scratch-buffer sizing and cancellation.
// The pool and heap capacities are starting points, not hard limits: the
// node pool and heap grow with append like any Go slice. The visited
// capacity is fixed for the Driver's lifetime.
type Options struct {
	PoolCapacity    int
	HeapCapacity    int
	VisitedCapacity int
	Ctx             context.Context
}

// Option is a functional option for NewDriver.
type Option func(*Options)

// DefaultOptions returns the settings used when NewDriver is given no
// options: starting capacities of 256, visited.DefaultCapacity for the
// visited table, and a background context (Run never cancels on its own).
func DefaultOptions() Options {
	return Options{
		PoolCapacity:    256,
		HeapCapacity:    256,
		VisitedCapacity: 0,
		Ctx:             context.Background(),
	}
}

// WithPoolCapacity sets the initial node-pool capacity.
func WithPoolCapacity(n int) Option {
	return func(o *Options) { o.PoolCapacity = n }
}

// WithHeapCapacity sets the initial open-heap capacity.
func WithHeapCapacity(n int) Option {
	return func(o *Options) { o.HeapCapacity = n }
}

// WithVisitedCapacity sets the visited table's slot count (rounded up to
// a power of two by package visited). Zero selects visited.DefaultCapacity.
func WithVisitedCapacity(n int) Option {
	return func(o *Options) { o.VisitedCapacity = n }
}

// WithContext sets the context checked for cancellation between heap
// pops, so a caller can abort a long search on a dense grid without
// waiting for it to exhaust the open set.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// noParent marks the root node of the search tree in the node pool.
const noParent = ^uint32(0)

// node is one entry in the search tree: the toggle state and position it
// represents, the index of its parent in the pool, and its accumulated
// movement cost.
type node struct {
	state  grid.ToggleState
	parent uint32
	pos    grid.Position
	g      uint16
}

// openHeap is a binary min-heap of packed (f-value, pool index) entries.
// Packing both into one uint64, f in the high 32 bits, makes the common
// case - comparing by f, breaking ties by insertion index - a single
// unsigned comparison, and keeps the heap allocation-free per element.
type openHeap []uint64

func packEntry(f uint16, index uint32) uint64 {
	return uint64(f)<<32 | uint64(index)
}

func unpackEntry(e uint64) (f uint16, index uint32) {
	return uint16(e >> 32), uint32(e)
}

func (h openHeap) Len() int            { return len(h) }
func (h openHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h openHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x interface{}) { *h = append(*h, x.(uint64)) }
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

var _ heap.Interface = (*openHeap)(nil)

// Result is the outcome of one Driver.Run call.
type Result struct {
	// Found reports whether any path to the target exists.
	Found bool
	// Waypoints lists the button positions pressed on an optimal path, in
	// press order. It does not include the start position.
	Waypoints []grid.Position
	// TotalCost is the optimal path's total movement cost in cells moved.
	TotalCost uint16
}
