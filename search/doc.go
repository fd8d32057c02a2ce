// Package search implements the A* driver that finds the minimum-cost
// sequence of button presses leading from a start cell to the target,
// treating (toggle-state, position) pairs as the search graph's nodes and
// package flood's bit-parallel BFS as the edge-generation primitive.
//
// What
//
//   - Driver owns all scratch state for repeated searches: a node pool, a
//     binary heap of packed (f, index) entries, and a visited table, none
//     of which is reallocated between calls to Run.
//   - Run performs A* from a start position to the grid's fixed target,
//     returning the ordered waypoints (button presses) of an optimal
//     solution, or a not-found result if none exists.
//   - The heuristic is admissible by construction (package heuristic), so
//     the first complete path found once its f-value is the smallest
//     remaining in the open set is optimal; Run keeps searching past
//     that point only long enough to confirm no cheaper path remains.
//
// Why
//
//   - Every other component (grid, heuristic, flood, visited) exists to
//     make this search loop fast: flood turns "which buttons can I reach"
//     into one BFS sweep instead of one edge per reachable cell, and
//     visited turns state deduplication into O(1) table operations.
//
// Complexity
//
//   - O(states * expand) where expand is flood.Expander.Expand's cost and
//     states is bounded by 2^colors * cells: at most 256 toggle states per
//     cell, since a color is either toggled or not.
//
// Errors
//
//   - visited.ErrTableFull propagates out of Run if search explores more
//     distinct (state, position) pairs than the table holds; raising the
//     table's default capacity is usually the right fix over catching and
//     retrying.
package search
