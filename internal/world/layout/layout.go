// Package layout builds grids from compiled-in literal maps.
package layout

import (
	"errors"
	"fmt"

	"chosenoffset.com/sightline/internal/world/grid"
)

// ErrUnknownLayout is returned by Named for names with no layout behind them
var ErrUnknownLayout = errors.New("unknown layout")

// Names of the built-in layouts
const (
	NameDefault = "default"
	NameRing    = "ring"
)

// defaultRows is the 8x8 walled room with a wall run cutting in from the east.
var defaultRows = []string{
	"11111111",
	"10000001",
	"10000001",
	"10011111",
	"10000001",
	"10000001",
	"10000001",
	"11111111",
}

// Parse builds a grid from one string per row.
// Glyphs: '1' or '#' wall, '0' or '.' empty, '2' or '*' marked.
func Parse(rows []string) (*grid.Grid, error) {
	if err := validateRows(rows); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	g, err := grid.New(len(rows[0]), len(rows))
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			state, err := parseGlyph(row[x])
			if err != nil {
				return nil, fmt.Errorf("invalid layout at row %d, column %d: %w", y, x, err)
			}
			g.Set(x, y, state)
		}
	}

	return g, nil
}

// validateRows checks that rows form a non-empty rectangle
func validateRows(rows []string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows")
	}

	width := len(rows[0])
	if width == 0 {
		return fmt.Errorf("row 0 is empty")
	}

	for y, row := range rows {
		if len(row) != width {
			return fmt.Errorf("row width mismatch at row %d: expected %d, got %d", y, width, len(row))
		}
	}

	return nil
}

func parseGlyph(c byte) (grid.State, error) {
	switch c {
	case '0', '.':
		return grid.Empty, nil
	case '1', '#':
		return grid.Wall, nil
	case '2', '*':
		return grid.Marked, nil
	default:
		return 0, fmt.Errorf("unknown glyph %q", c)
	}
}

// Default returns a fresh copy of the built-in 8x8 map
func Default() *grid.Grid {
	g, err := Parse(defaultRows)
	if err != nil {
		panic(err)
	}
	return g
}

// Ring returns a width x height grid walled on every edge and empty inside
func Ring(width, height int) (*grid.Grid, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	for _, p := range g.Border() {
		g.Set(p.X, p.Y, grid.Wall)
	}
	return g, nil
}

// Named returns a fresh grid for one of the built-in layout names
func Named(name string) (*grid.Grid, error) {
	switch name {
	case NameDefault:
		return Default(), nil
	case NameRing:
		return Ring(8, 8)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}
