// Package visited implements the generation-tagged, open-addressed hash
// table the A* driver uses to deduplicate (toggle-state, position) pairs
// and track the best g-cost seen for each.
//
// What
//
//   - Table is a fixed-capacity, power-of-two-sized, linear-probed hash
//     table keyed by (grid.ToggleState, grid.Position).
//   - InsertOrUpdate reports whether a node is worth expanding: true for a
//     fresh slot or a strict g-cost improvement, false otherwise.
//   - ResetForSearch bumps a 16-bit generation counter so every slot from
//     a prior search reads as empty in O(1), without zeroing the table.
//
// Why
//
//   - The driver calls InsertOrUpdate once per candidate waypoint and Get
//     to detect stale heap entries once per pop; both must be O(1)
//     amortized for A* to stay fast, which open addressing with a good
//     hash mix provides without the indirection of a map[struct]uint16.
//
// Errors
//
//   - ErrTableFull: every slot was probed without finding room or a match.
//     The default capacity is raised well above the original 2048 and this
//     detection is added so a saturated table surfaces as an error instead
//     of probing forever.
package visited
