package grid

import (
	"fmt"
	"strings"
)

// Grid is an immutable maze occupancy grid.
// Width and Height are the grid (not logical) dimensions.
// start and goals are indexed once during construction.
type Grid struct {
	Width, Height int
	cells         [][]Marker
	start         Position
	hasStart      bool
	goals         []Position
}

// New constructs a Grid from a non-empty, rectangular 2D slice indexed
// cells[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(cells [][]Marker) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{Width: w, Height: h, cells: make([][]Marker, h)}
	for y := 0; y < h; y++ {
		g.cells[y] = make([]Marker, w)
		copy(g.cells[y], cells[y])
		for x, m := range g.cells[y] {
			switch m {
			case Start:
				// last one wins; the loader rejects duplicates before we get here
				g.start = Position{X: x, Y: y}
				g.hasStart = true
			case Goal:
				g.goals = append(g.goals, Position{X: x, Y: y})
			}
		}
	}

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// CellAt returns the marker at p. Positions outside the grid read as Wall.
func (g *Grid) CellAt(p Position) Marker {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y][p.X]
}

// IsOpen reports whether p is inside the grid and not a wall.
// Start and Goal cells are open.
func (g *Grid) IsOpen(p Position) bool {
	return g.CellAt(p) != Wall
}

// CanMove reports whether a move from p in direction d is legal: the
// intervening cell must be open and the destination must be in bounds.
func (g *Grid) CanMove(p Position, d Direction) bool {
	return g.IsOpen(between(p, d)) && g.InBounds(Step(p, d))
}

// OnOuterRing reports whether p lies on the outermost traversable ring.
func (g *Grid) OnOuterRing(p Position) bool {
	return p.X == 1 || p.Y == 1 || p.X == g.Width-2 || p.Y == g.Height-2
}

// Start returns the start position and whether the grid has one.
func (g *Grid) Start() (Position, bool) {
	return g.start, g.hasStart
}

// Goals returns a copy of all goal positions in row-major order.
func (g *Grid) Goals() []Position {
	out := make([]Position, len(g.goals))
	copy(out, g.goals)
	return out
}

// IsGoal reports whether p holds a Goal marker.
func (g *Grid) IsGoal(p Position) bool {
	return g.CellAt(p) == Goal
}

// LogicalSize returns the maze dimensions in logical cells.
func (g *Grid) LogicalSize() (height, width int) {
	return (g.Height - 1) / 2, (g.Width - 1) / 2
}

// Walk replays dirs from `from` and returns the final position.
// Returns ErrOutOfBounds if from lies outside the grid and ErrBlocked
// (wrapped with the offending step) if any move is illegal.
// Complexity: O(len(dirs)).
func (g *Grid) Walk(from Position, dirs []Direction) (Position, error) {
	if !g.InBounds(from) {
		return from, fmt.Errorf("%w: %s", ErrOutOfBounds, from)
	}
	cur := from
	for i, d := range dirs {
		if !g.CanMove(cur, d) {
			return cur, fmt.Errorf("%w: step %d (%s) from %s", ErrBlocked, i, d, cur)
		}
		cur = Step(cur, d)
	}
	return cur, nil
}

// String renders the grid in maze-file form, one line per row, without the
// dimension header.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteString(g.cells[y][x].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
