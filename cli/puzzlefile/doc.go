// Package puzzlefile loads and saves colorlock puzzle definitions as a
// flat, tagged-struct JSON document.
//
// What
//
//   - Puzzle is the on-disk shape: the five parallel grid arrays, the
//     target cell, and an optional start cell.
//   - Load reads and validates a file's JSON into a Puzzle.
//   - Save writes a Puzzle back out, indented for human readability.
package puzzlefile
