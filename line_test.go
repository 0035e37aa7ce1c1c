package preview

import (
	"image"
	"math"
	"slices"
	"testing"
)

func trace(s Segment) []image.Point {
	var pts []image.Point
	TraceLine(s, func(x, y int) {
		pts = append(pts, image.Pt(x, y))
	})
	return pts
}

func TestTraceLine(t *testing.T) {
	tests := []struct {
		name string
		s    Segment
		want []image.Point
	}{
		{
			name: "point",
			s:    Segment{5, 5, 5, 5},
			want: []image.Point{{5, 5}},
		},
		{
			name: "horizontal",
			s:    Segment{0, 0, 3, 0},
			want: []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		},
		{
			name: "vertical_up",
			s:    Segment{0, 0, 0, -2},
			want: []image.Point{{0, 0}, {0, -1}, {0, -2}},
		},
		{
			name: "diagonal",
			s:    Segment{0, 0, 2, 2},
			want: []image.Point{{0, 0}, {1, 1}, {2, 2}},
		},
		{
			name: "shallow",
			s:    Segment{0, 0, 3, 1},
			want: []image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}},
		},
		{
			name: "shallow_reversed",
			s:    Segment{3, 1, 0, 0},
			want: []image.Point{{3, 1}, {2, 1}, {1, 0}, {0, 0}},
		},
		{
			name: "steep",
			s:    Segment{0, 0, 1, 3},
			want: []image.Point{{0, 0}, {0, 1}, {1, 2}, {1, 3}},
		},
		{
			name: "negative",
			s:    Segment{-2, -1, -4, -3},
			want: []image.Point{{-2, -1}, {-3, -2}, {-4, -3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trace(tt.s)
			if !slices.Equal(got, tt.want) {
				t.Errorf("TraceLine(%v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

// TestTraceLineProperties checks the guarantees of TraceLine for all
// segments with endpoints in a small square around the origin.
func TestTraceLineCoordinateRange(t *testing.T) {
	const m = MaxCoordinate

	got := trace(Segment{m - 3, -m, m, -m + 2})
	want := []image.Point{{m - 3, -m}, {m - 2, -m + 1}, {m - 1, -m + 1}, {m, -m + 2}}
	if !slices.Equal(got, want) {
		t.Errorf("near the limit: got %v, want %v", got, want)
	}

	for _, s := range []Segment{
		{math.MinInt + 10, 0, math.MaxInt - 10, 0},
		{0, 0, m + 1, 0},
		{0, -m - 1, 0, 0},
	} {
		n := 0
		TraceLine(s, func(x, y int) { n++ })
		if n != 0 {
			t.Errorf("%v: visited %d pixels, want 0", s, n)
		}
	}
}

func TestTraceLineProperties(t *testing.T) {
	const r = 6
	for x0 := -r; x0 <= r; x0++ {
		for y0 := -r; y0 <= r; y0++ {
			for x1 := -r; x1 <= r; x1++ {
				for y1 := -r; y1 <= r; y1++ {
					s := Segment{x0, y0, x1, y1}
					if err := checkLine(s, trace(s)); err != "" {
						t.Fatalf("%v: %s", s, err)
					}
				}
			}
		}
	}
}

func checkLine(s Segment, pts []image.Point) string {
	dx, dy := abs(s.X1-s.X0), abs(s.Y1-s.Y0)
	if len(pts) != max(dx, dy)+1 {
		return "wrong number of pixels"
	}
	if pts[0] != image.Pt(s.X0, s.Y0) {
		return "start point missing"
	}
	if pts[len(pts)-1] != image.Pt(s.X1, s.Y1) {
		return "end point missing"
	}

	seen := make(map[image.Point]bool, len(pts))
	for i, p := range pts {
		if seen[p] {
			return "pixel visited twice"
		}
		seen[p] = true
		if i == 0 {
			continue
		}

		step := p.Sub(pts[i-1])
		if abs(step.X) > 1 || abs(step.Y) > 1 {
			return "not 8-connected"
		}
		// never step away from the end point
		if step.X != 0 && sign(step.X) != sign(s.X1-s.X0) {
			return "x not monotonic"
		}
		if step.Y != 0 && sign(step.Y) != sign(s.Y1-s.Y0) {
			return "y not monotonic"
		}
		// the dominant axis moves on every step
		if dx >= dy && step.X == 0 || dy >= dx && step.Y == 0 {
			return "dominant axis stalls"
		}
	}
	return ""
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
