// Package grid holds the fixed-size cell map that sight traces run over.
package grid

import (
	"fmt"

	"chosenoffset.com/sightline/internal/core/raster"
)

// State is the content of a single cell. The numeric value is also the code
// printed for the cell.
type State uint8

const (
	Empty  State = 0
	Wall   State = 1
	Marked State = 2
)

// String returns a readable name for the state
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Marked:
		return "marked"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Grid is a width x height array of cell states stored row-major.
type Grid struct {
	width  int
	height int
	cells  []State
}

// New creates an all-empty grid of the given dimensions
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions: %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]State, width*height),
	}, nil
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Index maps (x, y) to its slot in the row-major cell slice.
// Out-of-range coordinates are a caller bug and panic rather than wrap into
// a neighbouring row.
func (g *Grid) Index(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("grid: coordinates out of bounds: (%d, %d) on %dx%d grid", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// InBounds reports whether p addresses a cell of the grid
func (g *Grid) InBounds(p raster.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Get returns the state at (x, y)
func (g *Grid) Get(x, y int) State {
	return g.cells[g.Index(x, y)]
}

// Set stores the state at (x, y)
func (g *Grid) Set(x, y int, s State) {
	g.cells[g.Index(x, y)] = s
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]State, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Count returns how many cells hold the given state
func (g *Grid) Count(s State) int {
	n := 0
	for _, c := range g.cells {
		if c == s {
			n++
		}
	}
	return n
}

// ClearMarks turns every marked cell back into an empty one
func (g *Grid) ClearMarks() {
	for i, c := range g.cells {
		if c == Marked {
			g.cells[i] = Empty
		}
	}
}

// Row returns a copy of row y
func (g *Grid) Row(y int) []State {
	start := g.Index(0, y)
	row := make([]State, g.width)
	copy(row, g.cells[start:start+g.width])
	return row
}

// Border lists every edge cell once, sweeping the top row left to right,
// the right column top to bottom, the left column top to bottom and the
// bottom row left to right. Corners appear where they are first reached.
func (g *Grid) Border() []raster.Point {
	seen := make(map[raster.Point]bool)
	var border []raster.Point
	add := func(x, y int) {
		p := raster.Point{X: x, Y: y}
		if !seen[p] {
			seen[p] = true
			border = append(border, p)
		}
	}

	for x := 0; x < g.width; x++ {
		add(x, 0)
	}
	for y := 0; y < g.height; y++ {
		add(g.width-1, y)
	}
	for y := 0; y < g.height; y++ {
		add(0, y)
	}
	for x := 0; x < g.width; x++ {
		add(x, g.height-1)
	}

	return border
}
