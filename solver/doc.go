// Package solver is colorlock's public entry point: it builds a grid
// once from puzzle input, then drives repeated searches for start
// positions against that fixed grid, reusing all scratch state across
// calls.
//
// What
//
//   - New validates and compiles puzzle input into a *grid.Grid and its
//     admissibility heuristic once.
//   - Solve (and its error-returning sibling SolveErr) run an A* search
//     via package search and reconstruct the concrete cell path via
//     package pathrecon, stitching per-waypoint segments into one route.
//   - Version reports the module's build identifier, and Grid exposes the
//     compiled grid for callers that need it directly (package
//     gridexport's graph/DOT export, for instance).
//
// Why
//
//   - Everything below this package (grid, heuristic, flood, visited,
//     search, pathrecon) is reusable machinery; this package is the seam
//     where puzzle input becomes an answer, and the one place callers
//     (the CLI, tests, embedders) are expected to import directly.
//
// Errors
//
//   - New returns a sentinel error (propagated from package grid) for
//     malformed puzzle input; there is nothing to search until that is
//     fixed.
//   - Solve treats a search-time failure (the visited table saturating;
//     New sets no cancellation context) the same as "no path"
//     and returns an empty slice, matching the spec's rule that there is
//     no partial result; SolveErr returns the same slice plus the
//     underlying error for callers that want to tell the two apart.
package solver
