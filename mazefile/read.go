package mazefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mazepath/grid"
)

// Load opens path and parses it with Parse.
func Load(path string) (*grid.Grid, grid.Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, grid.Position{}, fmt.Errorf("mazefile: open %q: %w", path, err)
	}
	defer f.Close()

	g, start, err := Parse(f)
	if err != nil {
		return nil, grid.Position{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, start, nil
}

// Parse reads a maze from r and returns the grid and its start position.
// Complexity: O(W×H) time and memory.
func Parse(r io.Reader) (*grid.Grid, grid.Position, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 2*MaxDimension+64)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, grid.Position{}, fmt.Errorf("mazefile: read header: %w", err)
		}
		return nil, grid.Position{}, fmt.Errorf("%w: empty input", ErrMalformedHeader)
	}
	h, w, err := parseHeader(sc.Text())
	if err != nil {
		return nil, grid.Position{}, err
	}

	rows, cols := 2*h+1, 2*w+1
	cells := make([][]grid.Marker, 0, rows)
	var starts []grid.Position
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if len(cells) == rows {
			if strings.TrimSpace(text) != "" {
				return nil, grid.Position{}, fmt.Errorf("%w: line %d: want %d rows", ErrTooManyRows, line, rows)
			}
			continue
		}
		if len(text) > cols {
			if strings.TrimRight(text[cols:], " ") != "" {
				return nil, grid.Position{}, fmt.Errorf("%w: line %d has %d characters, want at most %d",
					ErrRowTooLong, line, len(text), cols)
			}
			text = text[:cols]
		}

		y := len(cells)
		row := make([]grid.Marker, cols)
		for x := range row {
			if x >= len(text) {
				row[x] = grid.Wall
				continue
			}
			row[x] = grid.MarkerOf(text[x])
			if row[x] == grid.Start {
				starts = append(starts, grid.Position{X: x, Y: y})
			}
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, grid.Position{}, fmt.Errorf("mazefile: read line %d: %w", line+1, err)
	}
	if len(cells) < rows {
		return nil, grid.Position{}, fmt.Errorf("%w: got %d, want %d", ErrTooFewRows, len(cells), rows)
	}

	start, err := checkStart(starts)
	if err != nil {
		return nil, grid.Position{}, err
	}

	g, err := grid.New(cells)
	if err != nil {
		return nil, grid.Position{}, fmt.Errorf("mazefile: %w", err)
	}
	return g, start, nil
}

// parseHeader reads "height width".
func parseHeader(text string) (h, w int, err error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: got %q", ErrMalformedHeader, text)
	}
	if h, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: height: %v", ErrMalformedHeader, err)
	}
	if w, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: width: %v", ErrMalformedHeader, err)
	}
	if h < 1 || w < 1 || h > MaxDimension || w > MaxDimension {
		return 0, 0, fmt.Errorf("%w: %d×%d, each must be in [1, %d]", ErrDimensions, h, w, MaxDimension)
	}
	return h, w, nil
}

// checkStart requires exactly one start on a logical cell.
func checkStart(starts []grid.Position) (grid.Position, error) {
	switch {
	case len(starts) == 0:
		return grid.Position{}, ErrMissingStart
	case len(starts) > 1:
		return grid.Position{}, fmt.Errorf("%w: %v", ErrMultipleStarts, starts)
	}
	s := starts[0]
	if s.X%2 == 0 || s.Y%2 == 0 {
		return grid.Position{}, fmt.Errorf("%w: %s", ErrStartMisplaced, s)
	}
	return s, nil
}
