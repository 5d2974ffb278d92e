// Package text prints grids as rows of numeric cell codes.
package text

import (
	"bufio"
	"io"
	"strconv"

	"chosenoffset.com/sightline/internal/world/grid"
)

// Dump writes one line per grid row. Every cell code is followed by delim,
// including the last one in the row.
func Dump(w io.Writer, g *grid.Grid, delim string) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			bw.WriteString(strconv.Itoa(int(g.Get(x, y))))
			bw.WriteString(delim)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
