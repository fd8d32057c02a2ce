// Package colorlock is a planner for the color-toggle wall puzzle: a
// rectangular grid where colored walls block movement and colored buttons
// flip every wall of their color between active and inactive. colorlock
// finds a shortest-length path from a start cell to a target cell, choosing
// which buttons to press and in what order.
//
// What
//
//   - A two-level search: a state-space A* over (toggle-state, position)
//     pairs, whose edges are "reach the next button through currently
//     passable cells", stitched back into a concrete cell-by-cell path.
//   - A bitboard grid model (rows as uint64 masks) for O(rows) neighbor
//     expansion instead of O(cells) per A* node.
//
// Why
//
//   - Button-toggle puzzles have a state space that is exponential in the
//     number of colors (2^8 toggle states here); naive BFS over raw cells
//     cannot see past a single toggle configuration. The state-space search
//     treats "press this button" as the only edges that matter and lets a
//     heuristic (permanent-wall-only BFS distance) prune the rest.
//
// Subpackages
//
//	grid/      — bitboard grid model: row masks, button/color maps, heuristic table
//	heuristic/ — reverse BFS heuristic builder (permanent walls only)
//	flood/     — bit-parallel flood-fill expansion, the search's per-node edge generator
//	visited/   — generation-tagged open-addressed hash table for (state, pos) dedup
//	search/    — the A* driver: node pool, binary heap, pruning
//	pathrecon/ — converts the abstract waypoint sequence into a cell-by-cell path
//	solver/    — public entry point: New + Solve + Version, wiring the above
//	gridexport/ — debug/visualization export of a blocked-cell snapshot
//	cli/       — ambient logging and puzzle-file loading shared by cmd/colorlock
//	cmd/colorlock/ — a cobra CLI demonstrating solver usage against JSON puzzle files
//
package colorlock
