package mazefile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/mazepath/grid"
)

// Write encodes g in the maze-file format, header first. Walls are written
// as '#'.
func Write(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	h, wd := g.LogicalSize()
	if _, err := fmt.Fprintf(bw, "%d %d\n", h, wd); err != nil {
		return fmt.Errorf("mazefile: write header: %w", err)
	}
	if _, err := bw.WriteString(g.String()); err != nil {
		return fmt.Errorf("mazefile: write rows: %w", err)
	}
	return bw.Flush()
}
