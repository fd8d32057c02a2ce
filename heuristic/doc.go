// Package heuristic builds the admissible lower-bound distance table used
// by the A* search driver: a reverse breadth-first search from the target
// cell across every cell not blocked by a permanent wall.
//
// What
//
//   - Build(rows, cols int, permWalls []uint64, target uint16) fills and
//     returns a distance table indexed by packed row*64+col position, with
//     Infinity for cells the BFS never reaches.
//
// Why
//
//   - Every toggle-state unblocks at least as many cells as the
//     permanent-walls-only configuration would allow (toggling a color can
//     only add or remove that color's walls, and only permanent walls are
//     excluded from the relaxation). The BFS distance under permanent walls
//     alone is therefore a lower bound on the true shortest distance under
//     any toggle state, which is exactly what A* needs from a heuristic to
//     stay admissible.
//
// Complexity
//
//   - O(rows*cols) time and memory: each reachable cell is enqueued once.
package heuristic
