// Package grid models the robot's world: a rectangular board of free and
// blocked cells, the cell coordinates that serve as search states, and the
// four movement actions.
//
// What:
//
//   - Cell is a (row, col) coordinate. It is comparable, so it keys maps and
//     sets directly, and Less orders cells lexicographically.
//   - Action is one of Up, Down, Left, Right. Rows grow downward and columns
//     grow to the right; Action.Delta encodes that convention in one place.
//   - Grid is immutable once built. Obstacles are added at construction time
//     as rectangular Blocks, mirroring the (x,y,width,height) records of the
//     robot navigation map files.
//   - Layout is a declarative, YAML-taggable description of a whole scenario
//     (size, initial cells, goal cells, blocks) used by fixtures.
//
// Complexity:
//
//   - NewGrid:    O(R×C + Σ block areas) time, O(R×C) memory.
//   - Queries:    O(1).
//   - Components: O(R×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:        rows or columns are not positive.
//   - ErrNonRectangular:   FromRows received ragged rows.
//   - ErrBlockOutOfBounds: a block does not fit inside the grid.
//   - ErrUnknownAction:    ParseAction received an unknown label.
package grid
