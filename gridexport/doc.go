// Package gridexport converts a compiled *grid.Grid, at a fixed toggle
// state, into a small read-only graph for debugging and visualization.
//
// What
//
//   - Graph walks every cell, adding a vertex for each cell not blocked
//     under the given state and a unit-weight edge to every in-bounds
//     orthogonal neighbor that is also not blocked.
//   - CellGraph.DOT renders that graph as Graphviz source.
//
// Why
//
//   - There is no other place in colorlock that exposes a grid's walkable
//     topology as an inspectable structure; the CLI's graph subcommand and
//     ad-hoc debugging both want this without re-deriving it from
//     BlockedRow by hand.
package gridexport
