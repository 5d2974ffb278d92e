// Package raster converts a segment between two integer points into the
// 8-connected run of grid cells that approximates it.
package raster

import "iter"

// Point is an integer grid coordinate
type Point struct {
	X, Y int
}

// Step is one cell along a rasterized line and its 0-based position on it
type Step struct {
	Point
	Index int
}

// Line walks the cells between two points using a symmetric Bresenham
// error accumulator. It is produced by Rasterize and consumed with Next,
// or ranged over with Steps.
type Line struct {
	from, to Point

	i, x, y   int
	numerator int
	longest   int
	shortest  int

	// dx1/dy1 is the diagonal step, dx2/dy2 the step along the dominant axis
	dx1, dy1 int
	dx2, dy2 int
}

// Rasterize prepares the line from p0 to p1, both endpoints inclusive.
// The points may lie anywhere; no grid is involved.
func Rasterize(p0, p1 Point) *Line {
	w := p1.X - p0.X
	h := p1.Y - p0.Y

	l := &Line{
		from: p0,
		to:   p1,
		dx1:  sign(w),
		dy1:  sign(h),
		dx2:  sign(w),
	}

	l.longest = abs(w)
	l.shortest = abs(h)

	// Equal deltas fall through to the y axis.
	if !(l.longest > l.shortest) {
		l.longest = abs(h)
		l.shortest = abs(w)
		l.dx2 = 0
		l.dy2 = sign(h)
	}

	l.Reset()
	return l
}

// Points collects every cell of the line from p0 to p1
func Points(p0, p1 Point) []Point {
	l := Rasterize(p0, p1)
	points := make([]Point, 0, l.Len())
	for s := range l.Steps() {
		points = append(points, s.Point)
	}
	return points
}

// Reset rewinds the line to its first cell
func (l *Line) Reset() {
	l.i = 0
	l.x = l.from.X
	l.y = l.from.Y
	l.numerator = l.longest >> 1
}

// Len returns the number of cells the line emits
func (l *Line) Len() int {
	return l.longest + 1
}

// From returns the first endpoint
func (l *Line) From() Point {
	return l.from
}

// To returns the last endpoint
func (l *Line) To() Point {
	return l.to
}

// Next returns the current cell and advances, or reports false once every
// cell has been produced.
func (l *Line) Next() (Step, bool) {
	if l.i > l.longest {
		return Step{}, false
	}

	step := Step{Point: Point{X: l.x, Y: l.y}, Index: l.i}
	l.i++

	l.numerator += l.shortest
	if l.numerator >= l.longest {
		l.numerator -= l.longest
		l.x += l.dx1
		l.y += l.dy1
	} else {
		l.x += l.dx2
		l.y += l.dy2
	}

	return step, true
}

// Steps iterates the whole line from its first cell. Each call works on a
// private copy, so it neither disturbs nor depends on Next.
func (l *Line) Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		walker := *l
		walker.Reset()
		for {
			step, ok := walker.Next()
			if !ok || !yield(step) {
				return
			}
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
