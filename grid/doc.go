// Package grid models a text maze as an immutable occupancy grid in which
// logical cells and the walls between them are interleaved.
//
// What:
//
//   - A maze of h×w logical cells is stored as a (2h+1)×(2w+1) grid of Markers.
//   - Logical cells sit at odd coordinates; even rows and columns hold walls
//     or the openings between neighboring cells.
//   - A move in a Direction spans two grid cells: the intervening cell must be
//     open and the destination must lie inside the grid.
//
// Coordinates:
//
//	x grows east (column), y grows south (row).
//	Logical cell (row r, col c) lives at grid position (2c+1, 2r+1).
//
//	  0 1 2 3 4
//	0 + - + - +
//	1 | S   F |      S at (1,1), F at (3,1), opening at (2,1)
//	2 + - + - +
//
// Outer ring:
//
//	Positions with x == 1, y == 1, x == Width-2 or y == Height-2 form the
//	outermost traversable ring. Searches charge a penalty for stepping onto it.
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds:    a position lies outside the grid.
//   - ErrBlocked:        a replayed move crosses a wall or leaves the grid.
//
// Complexity: all queries are O(1); New and Walk are linear in their input.
package grid
