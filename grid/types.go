package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrBlocked indicates a move through a wall or off the grid.
	ErrBlocked = errors.New("grid: move blocked")
)

// Marker is the content of a single grid cell.
type Marker uint8

const (
	// Open is a passable cell or an opening between two logical cells.
	Open Marker = iota
	// Wall blocks movement.
	Wall
	// Start marks the unique start cell.
	Start
	// Goal marks a goal cell. A maze may hold several.
	Goal
)

// String returns the character used for the marker in maze files.
func (m Marker) String() string {
	switch m {
	case Open:
		return " "
	case Start:
		return "S"
	case Goal:
		return "F"
	default:
		return "#"
	}
}

// MarkerOf maps a maze-file character to its marker:
// ' ' Open, 'S' Start, 'F' Goal, anything else Wall.
func MarkerOf(c byte) Marker {
	switch c {
	case ' ':
		return Open
	case 'S':
		return Start
	case 'F':
		return Goal
	default:
		return Wall
	}
}

// Position addresses a grid cell. Two positions are equal iff X and Y match,
// which makes Position usable as a map key for explored sets.
type Position struct {
	X, Y int
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// FromLogical returns the grid position of logical cell (row, col).
func FromLogical(row, col int) Position {
	return Position{X: 2*col + 1, Y: 2*row + 1}
}

// Logical converts a cell position back to its logical (row, col).
// The result is only meaningful for positions at odd coordinates.
func (p Position) Logical() (row, col int) {
	return (p.Y - 1) / 2, (p.X - 1) / 2
}

// Direction is one of the four cardinal moves.
type Direction uint8

const (
	// North moves toward y-1.
	North Direction = iota
	// East moves toward x+1.
	East
	// South moves toward y+1.
	South
	// West moves toward x-1.
	West
)

// Directions lists every direction in expansion order.
var Directions = [4]Direction{North, East, South, West}

// unit offsets per direction, indexed by Direction.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

var symbols = [4]byte{'N', 'E', 'S', 'W'}

// Symbol returns the single-letter symbol: 'N', 'E', 'S' or 'W'.
func (d Direction) Symbol() byte {
	if int(d) >= len(symbols) {
		return '?'
	}
	return symbols[d]
}

// String returns the symbol as a string.
func (d Direction) String() string {
	return string(d.Symbol())
}

// ParseDirection maps a symbol back to its Direction.
func ParseDirection(c byte) (Direction, bool) {
	for i, s := range symbols {
		if s == c {
			return Direction(i), true
		}
	}
	return 0, false
}

// Step returns the position one logical move away from p in direction d,
// i.e. two grid cells further. It performs no bounds or wall checks.
func Step(p Position, d Direction) Position {
	o := offsets[d]
	return Position{X: p.X + 2*o[0], Y: p.Y + 2*o[1]}
}

// between returns the wall-slot position separating p from Step(p, d).
func between(p Position, d Direction) Position {
	o := offsets[d]
	return Position{X: p.X + o[0], Y: p.Y + o[1]}
}
