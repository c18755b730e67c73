package search_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
)

// parseRows builds a grid from maze-file rows and returns it with its start.
func parseRows(rows ...string) (*grid.Grid, grid.Position, error) {
	cells := make([][]grid.Marker, len(rows))
	for y, row := range rows {
		cells[y] = make([]grid.Marker, len(row))
		for x := 0; x < len(row); x++ {
			cells[y][x] = grid.MarkerOf(row[x])
		}
	}
	g, err := grid.New(cells)
	if err != nil {
		return nil, grid.Position{}, err
	}
	start, ok := g.Start()
	if !ok {
		return nil, grid.Position{}, errors.New("no start marker")
	}

	return g, start, nil
}

func mustGrid(t testing.TB, rows ...string) (*grid.Grid, grid.Position) {
	t.Helper()
	g, start, err := parseRows(rows...)
	require.NoError(t, err)

	return g, start
}

// openMaze3x3 is a 3×3 logical maze with no interior walls,
// start at logical (0,0) and goal at logical (2,2).
var openMaze3x3 = []string{
	"#######",
	"#S    #",
	"#     #",
	"#     #",
	"#     #",
	"#    F#",
	"#######",
}

// randomMaze returns rows for an h×w logical maze whose interior wall slots
// are open with probability pOpen. Start and goal are distinct random cells.
func randomMaze(rng *rand.Rand, h, w int, pOpen float64) []string {
	H, W := 2*h+1, 2*w+1
	cells := make([][]byte, H)
	for y := range cells {
		cells[y] = make([]byte, W)
		for x := range cells[y] {
			switch {
			case x == 0 || y == 0 || x == W-1 || y == H-1:
				cells[y][x] = '#'
			case x%2 == 1 && y%2 == 1:
				cells[y][x] = ' '
			case x%2 == 0 && y%2 == 0:
				cells[y][x] = '+'
			case rng.Float64() < pOpen:
				cells[y][x] = ' '
			default:
				cells[y][x] = '#'
			}
		}
	}
	s := rng.Intn(h * w)
	f := rng.Intn(h*w - 1)
	if f >= s {
		f++
	}
	sp := grid.FromLogical(s/w, s%w)
	fp := grid.FromLogical(f/w, f%w)
	cells[sp.Y][sp.X] = 'S'
	cells[fp.Y][fp.X] = 'F'

	rows := make([]string, H)
	for y := range cells {
		rows[y] = string(cells[y])
	}

	return rows
}
