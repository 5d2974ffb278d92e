package raster

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsKnownLines(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 Point
		want   []Point
	}{
		{
			name: "x dominant",
			p0:   Point{0, 0},
			p1:   Point{5, 2},
			want: []Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}},
		},
		{
			name: "y dominant",
			p0:   Point{0, 0},
			p1:   Point{2, 5},
			want: []Point{{0, 0}, {0, 1}, {1, 2}, {1, 3}, {2, 4}, {2, 5}},
		},
		{
			name: "diagonal tie goes to y axis",
			p0:   Point{0, 0},
			p1:   Point{3, 3},
			want: []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		},
		{
			name: "negative direction",
			p0:   Point{0, 0},
			p1:   Point{-4, 1},
			want: []Point{{0, 0}, {-1, 0}, {-2, 1}, {-3, 1}, {-4, 1}},
		},
		{
			name: "horizontal",
			p0:   Point{2, 2},
			p1:   Point{6, 2},
			want: []Point{{2, 2}, {3, 2}, {4, 2}, {5, 2}, {6, 2}},
		},
		{
			name: "vertical upward",
			p0:   Point{1, 3},
			p1:   Point{1, 0},
			want: []Point{{1, 3}, {1, 2}, {1, 1}, {1, 0}},
		},
		{
			name: "single cell",
			p0:   Point{4, -7},
			p1:   Point{4, -7},
			want: []Point{{4, -7}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Points(tt.p0, tt.p1)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Points(%v, %v) mismatch (-want +got):\n%s", tt.p0, tt.p1, diff)
			}
		})
	}
}

func TestRasterizeProperties(t *testing.T) {
	const span = 6
	for x0 := -span; x0 <= span; x0 += 3 {
		for y0 := -span; y0 <= span; y0 += 3 {
			for x1 := -span; x1 <= span; x1++ {
				for y1 := -span; y1 <= span; y1++ {
					p0, p1 := Point{x0, y0}, Point{x1, y1}
					points := Points(p0, p1)

					want := max(abs(x1-x0), abs(y1-y0)) + 1
					require.Len(t, points, want, "length of %v -> %v", p0, p1)
					assert.Equal(t, p0, points[0], "first cell of %v -> %v", p0, p1)
					assert.Equal(t, p1, points[len(points)-1], "last cell of %v -> %v", p0, p1)

					for i := 1; i < len(points); i++ {
						a, b := points[i-1], points[i]
						dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
						if dx > 1 || dy > 1 || (dx == 0 && dy == 0) {
							t.Fatalf("%v -> %v: step %d jumps from %v to %v", p0, p1, i, a, b)
						}
					}
				}
			}
		}
	}
}

func TestRasterizeIsDirectional(t *testing.T) {
	// Reversing the endpoints does not mirror the walk cell for cell.
	forward := Points(Point{0, 0}, Point{1, 2})
	backward := Points(Point{1, 2}, Point{0, 0})

	assert.Equal(t, []Point{{0, 0}, {1, 1}, {1, 2}}, forward)
	assert.Equal(t, []Point{{1, 2}, {0, 1}, {0, 0}}, backward)
}

func TestLineNext(t *testing.T) {
	l := Rasterize(Point{0, 0}, Point{2, 1})
	require.Equal(t, 3, l.Len())

	var got []Step
	for {
		s, ok := l.Next()
		if !ok {
			break
		}
		got = append(got, s)
	}

	want := []Step{
		{Point: Point{0, 0}, Index: 0},
		{Point: Point{1, 1}, Index: 1},
		{Point: Point{2, 1}, Index: 2},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}

	_, ok := l.Next()
	assert.False(t, ok, "exhausted line must stay exhausted")

	l.Reset()
	s, ok := l.Next()
	require.True(t, ok)
	assert.Equal(t, Step{Point: Point{0, 0}, Index: 0}, s)
}

func TestLineStepsRestartable(t *testing.T) {
	l := Rasterize(Point{7, 3}, Point{0, 0})

	// Partially consume with Next; Steps must still start at the beginning.
	l.Next()
	l.Next()

	collect := func() []Step {
		var steps []Step
		for s := range l.Steps() {
			steps = append(steps, s)
		}
		return steps
	}

	first := collect()
	second := collect()
	require.Len(t, first, 8)
	assert.Equal(t, first, second)
	assert.Equal(t, Point{7, 3}, first[0].Point)
	assert.Equal(t, Point{0, 0}, first[7].Point)

	s, ok := l.Next()
	require.True(t, ok)
	assert.Equal(t, 2, s.Index, "Steps must not move the Next cursor")
}

func TestLineStepsEarlyBreak(t *testing.T) {
	l := Rasterize(Point{0, 0}, Point{10, 0})
	count := 0
	for s := range l.Steps() {
		count++
		if s.Index == 3 {
			break
		}
	}
	assert.Equal(t, 4, count)
}

func TestLineEndpoints(t *testing.T) {
	l := Rasterize(Point{1, 2}, Point{3, 4})
	assert.Equal(t, Point{1, 2}, l.From())
	assert.Equal(t, Point{3, 4}, l.To())
}
