// Package viewer shows a swept grid in a window and lets the user move the
// observer with the mouse.
package viewer

import (
	"fmt"
	"image/color"

	"chosenoffset.com/sightline/internal/core/raster"
	"chosenoffset.com/sightline/internal/core/sight"
	"chosenoffset.com/sightline/internal/render"
	"chosenoffset.com/sightline/internal/world/grid"
)

// StatusBarHeight is the strip under the grid used for the status line
const StatusBarHeight = 24

// Palette maps cell states and overlays to colors.
type Palette struct {
	Empty      color.Color
	Wall       color.Color
	Marked     color.Color
	Ray        color.Color
	Observer   color.Color
	Background color.Color
}

// DefaultPalette returns the built-in colors
func DefaultPalette() Palette {
	return Palette{
		Empty:      color.NRGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff},
		Wall:       color.NRGBA{R: 0x6b, G: 0x5b, B: 0x4b, A: 0xff},
		Marked:     color.NRGBA{R: 0xe8, G: 0xd8, B: 0x8a, A: 0xff},
		Ray:        color.NRGBA{R: 0x4a, G: 0xa8, B: 0xe8, A: 0xff},
		Observer:   color.NRGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xff},
		Background: color.Black,
	}
}

// Options configures a Viewer
type Options struct {
	CellSize int
	Palette  Palette
}

// Viewer holds the map, the observer and the last sweep result.
type Viewer struct {
	base    *grid.Grid
	swept   *grid.Grid
	marked  int
	origin  raster.Point
	initial raster.Point

	hover    raster.Point
	hovering bool

	cellSize int
	palette  Palette
	renderer render.Renderer
	input    render.InputManager
}

// New sweeps base from origin and returns a viewer for it. base is not modified.
func New(base *grid.Grid, origin raster.Point, opts Options, renderer render.Renderer, input render.InputManager) (*Viewer, error) {
	if !base.InBounds(origin) {
		return nil, fmt.Errorf("origin (%d, %d) outside %dx%d grid", origin.X, origin.Y, base.Width(), base.Height())
	}
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("invalid cell size: %d", opts.CellSize)
	}

	v := &Viewer{
		base:     base.Clone(),
		initial:  origin,
		cellSize: opts.CellSize,
		palette:  opts.Palette,
		renderer: renderer,
		input:    input,
	}
	v.moveObserver(origin)
	return v, nil
}

// Origin returns the current observer cell
func (v *Viewer) Origin() raster.Point {
	return v.origin
}

// Grid returns the grid as seen from the current observer
func (v *Viewer) Grid() *grid.Grid {
	return v.swept
}

// Marked returns the number of visible cells
func (v *Viewer) Marked() int {
	return v.marked
}

// Hover returns the cell under the cursor, if any
func (v *Viewer) Hover() (raster.Point, bool) {
	return v.hover, v.hovering
}

func (v *Viewer) moveObserver(p raster.Point) {
	v.origin = p
	v.swept, v.marked = sight.Visible(v.base, p)
}

// cellAt converts screen pixels to a grid cell
func (v *Viewer) cellAt(px, py int) (raster.Point, bool) {
	if px < 0 || py < 0 {
		return raster.Point{}, false
	}
	p := raster.Point{X: px / v.cellSize, Y: py / v.cellSize}
	return p, v.base.InBounds(p)
}

// Update handles input.
func (v *Viewer) Update() error {
	if v.input.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	if v.input.IsKeyJustPressed(render.KeyR) && v.origin != v.initial {
		v.moveObserver(v.initial)
	}

	v.hover, v.hovering = v.cellAt(v.input.GetCursorPosition())

	if v.hovering && v.input.IsMouseButtonJustPressed(render.MouseButtonLeft) && v.hover != v.origin {
		v.moveObserver(v.hover)
	}

	return nil
}

// Draw renders the grid, the hovered ray, the observer and the status line.
func (v *Viewer) Draw(screen render.Image) {
	screen.Fill(v.palette.Background)

	size := float32(v.cellSize)
	for y := 0; y < v.swept.Height(); y++ {
		for x := 0; x < v.swept.Width(); x++ {
			v.renderer.FillRect(screen, float32(x)*size, float32(y)*size, size-1, size-1, v.stateColor(v.swept.Get(x, y)))
		}
	}

	if v.hovering {
		for _, p := range raster.Points(v.origin, v.hover) {
			v.renderer.StrokeRect(screen, float32(p.X)*size+1, float32(p.Y)*size+1, size-3, size-3, 2, v.palette.Ray)
		}
	}

	half := size / 2
	v.renderer.FillCircle(screen, float32(v.origin.X)*size+half, float32(v.origin.Y)*size+half, half/2, v.palette.Observer)

	status := fmt.Sprintf("observer (%d, %d)  visible %d", v.origin.X, v.origin.Y, v.marked)
	_, textHeight := v.renderer.MeasureText(status, 1)
	statusY := v.swept.Height()*v.cellSize + (StatusBarHeight-textHeight)/2
	v.renderer.DrawText(screen, status, 4, statusY, color.White, 1)
}

func (v *Viewer) stateColor(s grid.State) color.Color {
	switch s {
	case grid.Wall:
		return v.palette.Wall
	case grid.Marked:
		return v.palette.Marked
	default:
		return v.palette.Empty
	}
}

// Layout returns the grid size in pixels plus the status bar.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.base.Width() * v.cellSize, v.base.Height()*v.cellSize + StatusBarHeight
}
