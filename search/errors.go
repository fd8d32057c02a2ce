package search

import "errors"

// Sentinel errors returned by Driver.Run.
var (
	// ErrVisitedTableFull wraps visited.ErrTableFull: the search explored
	// more distinct (state, position) pairs than the visited table holds.
	ErrVisitedTableFull = errors.New("search: visited table is full")

	// ErrCanceled wraps the context error when Run's context is canceled
	// or times out between heap pops.
	ErrCanceled = errors.New("search: canceled")
)
