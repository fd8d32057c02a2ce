package visited

import (
	"errors"

	"github.com/nrgrid/colorlock/grid"
)

// ErrTableFull is returned by InsertOrUpdate when every slot has been
// probed without finding an empty slot, a matching key, or a slot whose
// generation is stale, under linear probing from the key's hash.
var ErrTableFull = errors.New("visited: table is full")

// DefaultCapacity is the table size used by NewTable(0), raised well above
// the original 2048-slot table: a 65536-slot table takes one mebibyte
// (each slot is 16 bytes) while making saturation on any puzzle
// within the supported 64x64/8-color bounds effectively unreachable.
const DefaultCapacity = 1 << 16

const (
	mixA = 6364136223846793005
	mixB = 2654435761
)

type slot struct {
	state grid.ToggleState
	pos   grid.Position
	g     uint16
	gen   uint16
}

// Table is a fixed-capacity, linear-probed hash table mapping
// (ToggleState, Position) to the best g-cost found for that node across
// the lifetime of one search. ResetForSearch reclaims it for the next
// search in O(1) by incrementing a generation tag rather than zeroing the
// backing array.
type Table struct {
	slots []slot
	mask  uint64
	gen   uint16
}

// NewTable allocates a table with the given capacity, rounded up to the
// next power of two. A capacity of 0 selects DefaultCapacity.
func NewTable(capacity int) *Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cap64 := nextPow2(uint64(capacity))
	return &Table{
		slots: make([]slot, cap64),
		mask:  cap64 - 1,
		gen:   1,
	}
}

func nextPow2(n uint64) uint64 {
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

func hashKey(state grid.ToggleState, pos grid.Position) uint64 {
	h := uint64(state)*mixA + uint64(pos)*mixB
	h ^= h >> 33
	return h
}

// ResetForSearch reclaims the whole table for a new search in O(1) by
// bumping the generation counter; all slots from prior generations read
// as empty. On the rare wrap of the 16-bit counter it clears the backing
// array instead and resets the generation to 1.
func (t *Table) ResetForSearch() {
	if t.gen == 0xFFFF {
		for i := range t.slots {
			t.slots[i] = slot{}
		}
		t.gen = 1
		return
	}
	t.gen++
}

// Get returns the best known g-cost for (state, pos) in the current
// search generation, or grid.Infinity if the node has not been visited.
func (t *Table) Get(state grid.ToggleState, pos grid.Position) uint16 {
	h := hashKey(state, pos)
	idx := h & t.mask
	for i := uint64(0); i <= t.mask; i++ {
		s := &t.slots[idx]
		if s.gen != t.gen {
			return grid.Infinity
		}
		if s.state == state && s.pos == pos {
			return s.g
		}
		idx = (idx + 1) & t.mask
	}
	return grid.Infinity
}

// InsertOrUpdate records g as the cost for (state, pos) if no entry for
// it exists yet in the current generation, or if g strictly improves on
// the existing entry. It reports whether the node is newly worth
// expanding (true for a fresh slot or an improvement, false for a node
// already known at an equal or better cost). ErrTableFull is returned if
// every slot in the table is occupied by a live, non-matching entry.
func (t *Table) InsertOrUpdate(state grid.ToggleState, pos grid.Position, g uint16) (bool, error) {
	h := hashKey(state, pos)
	idx := h & t.mask
	for i := uint64(0); i <= t.mask; i++ {
		s := &t.slots[idx]
		if s.gen != t.gen {
			*s = slot{state: state, pos: pos, g: g, gen: t.gen}
			return true, nil
		}
		if s.state == state && s.pos == pos {
			if g < s.g {
				s.g = g
				return true, nil
			}
			return false, nil
		}
		idx = (idx + 1) & t.mask
	}
	return false, ErrTableFull
}

// Len reports how many live entries the table holds in the current
// generation. It is O(capacity) and intended for diagnostics, not the
// search hot path.
func (t *Table) Len() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].gen == t.gen {
			n++
		}
	}
	return n
}

// Cap reports the table's fixed slot count.
func (t *Table) Cap() int {
	return len(t.slots)
}
