// Package sight marks the cells an observer can see by casting rasterized
// rays that stop at the first wall.
package sight

import (
	"chosenoffset.com/sightline/internal/core/raster"
	"chosenoffset.com/sightline/internal/world/grid"
)

// Field is the cell storage a trace reads and marks
type Field interface {
	Get(x, y int) grid.State
	Set(x, y int, s grid.State)
}

// Trace walks the ray from origin to target, marking every cell it passes
// until it reaches a wall. The wall itself is left untouched. Both points must
// be inside the field.
func Trace(f Field, origin, target raster.Point) {
	for step := range raster.Rasterize(origin, target).Steps() {
		if f.Get(step.X, step.Y) == grid.Wall {
			return
		}
		f.Set(step.X, step.Y, grid.Marked)
	}
}

// Sweep traces from origin to every border cell of g
func Sweep(g *grid.Grid, origin raster.Point) {
	for _, target := range g.Border() {
		Trace(g, origin, target)
	}
}

// Visible returns a copy of g swept from origin, leaving g unchanged, along
// with the number of marked cells.
func Visible(g *grid.Grid, origin raster.Point) (*grid.Grid, int) {
	swept := g.Clone()
	swept.ClearMarks()
	Sweep(swept, origin)
	return swept, swept.Count(grid.Marked)
}
