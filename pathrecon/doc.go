// Package pathrecon reconstructs the concrete cell-by-cell path between
// two positions under a fixed wall configuration, the final stage that
// turns package search's button-press waypoints into a walkable route.
//
// What
//
//   - Walker.Segment runs a plain 4-neighbor BFS from one position to
//     another, refusing to cross any button cell except the destination
//     itself (the is-destination exemption, checked before the is-button
//     filter so the destination is reachable even when it is a button).
//   - ComputeBlocked rebuilds a grid's per-row blocked masks for a given
//     toggle state, the same masks flood.Expander computes internally but
//     needed here as a standalone step because pathrecon walks one row's
//     plain BFS neighbors at a time rather than expanding whole rows.
//   - Walker reuses a single flat parent table sized rows*64 across
//     segments via a generation counter, the same O(1)-clear technique
//     package visited uses for its hash table.
//
// Why
//
//   - search.Driver's waypoints are buttons; nothing walks the cells in
//     between until this stage, which is invoked once per waypoint when a
//     solution's full path is requested rather than once per node
//     expansion, so a plain (non-bit-parallel) BFS is fast enough here.
//
// Complexity
//
//   - O(rows*cols) per segment.
package pathrecon
