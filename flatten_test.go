package preview

import (
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// polyline builds a path from a move and a sequence of lines.
func polyline(closed bool, pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}

func TestFlattenerLines(t *testing.T) {
	f := NewFlattener(10, 10)

	got := f.Segments(polyline(true,
		vec.Vec2{X: 0.4, Y: 0.4},
		vec.Vec2{X: 3.6, Y: 0.4},
		vec.Vec2{X: 3.6, Y: 5.2},
	), nil)
	want := []Segment{
		{0, 0, 4, 0},
		{4, 0, 4, 5},
		{4, 5, 0, 0},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlattenerAppends(t *testing.T) {
	f := NewFlattener(10, 10)
	dst := []Segment{{9, 9, 9, 9}}
	got := f.Segments(polyline(false, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 1}), dst)
	want := []Segment{{9, 9, 9, 9}, {1, 1, 2, 1}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlattenerCTM(t *testing.T) {
	f := NewFlattener(100, 100)
	f.CTM = matrix.Matrix{2, 0, 0, 3, 10, 20}

	got := f.Segments(polyline(false, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 5, Y: 5}), nil)
	want := []Segment{{10, 20, 20, 35}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlattenerClip(t *testing.T) {
	f := NewFlattener(10, 10)
	p := polyline(false,
		vec.Vec2{X: 20, Y: 20},
		vec.Vec2{X: 30, Y: 20}, // outside
		vec.Vec2{X: -5, Y: 5},  // crosses the canvas
		vec.Vec2{X: -5, Y: -5}, // outside, left of the canvas
	)
	got := f.Segments(p, nil)
	want := []Segment{{30, 20, -5, 5}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	f.Clip = rect.Rect{}
	if n := len(f.Segments(p, nil)); n != 3 {
		t.Errorf("without clipping: got %d segments, want 3", n)
	}
}

func TestFlattenerDot(t *testing.T) {
	f := NewFlattener(10, 10)
	got := f.Segments(polyline(false,
		vec.Vec2{X: 5, Y: 5},
		vec.Vec2{X: 5.2, Y: 5.1},
		vec.Vec2{X: 4.9, Y: 4.8},
	), nil)
	want := []Segment{{5, 5, 5, 5}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlattenerDotPerSubpath(t *testing.T) {
	dot := func(x, y float64) path.Path {
		return polyline(true, vec.Vec2{X: x, Y: y}, vec.Vec2{X: x + 0.1, Y: y})
	}
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		for _, q := range []path.Path{dot(2, 2), dot(7, 3), dot(20, 20)} {
			for cmd, pts := range q {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}

	f := NewFlattener(10, 10)
	got := f.Segments(p, nil)
	want := []Segment{{2, 2, 2, 2}, {7, 3, 7, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlattenerCurves(t *testing.T) {
	p0, p1, p2, p3 := vec.Vec2{X: 2, Y: 30}, vec.Vec2{X: 2, Y: 2}, vec.Vec2{X: 30, Y: 2}, vec.Vec2{X: 30, Y: 30}
	curves := map[string]path.Path{
		"quadratic": func(yield func(path.Command, []vec.Vec2) bool) {
			_ = yield(path.CmdMoveTo, []vec.Vec2{p0}) &&
				yield(path.CmdQuadTo, []vec.Vec2{p1, p3})
		},
		"cubic": func(yield func(path.Command, []vec.Vec2) bool) {
			_ = yield(path.CmdMoveTo, []vec.Vec2{p0}) &&
				yield(path.CmdCubeTo, []vec.Vec2{p1, p2, p3})
		},
	}
	for name, p := range curves {
		t.Run(name, func(t *testing.T) {
			f := NewFlattener(32, 32)
			segs := f.Segments(p, nil)
			if len(segs) < 4 {
				t.Fatalf("curve flattened to %d segments", len(segs))
			}
			first, last := segs[0], segs[len(segs)-1]
			if first.X0 != 2 || first.Y0 != 30 {
				t.Errorf("curve starts at (%d, %d)", first.X0, first.Y0)
			}
			if last.X1 != 30 || last.Y1 != 30 {
				t.Errorf("curve ends at (%d, %d)", last.X1, last.Y1)
			}
			for i := 1; i < len(segs); i++ {
				if segs[i].X0 != segs[i-1].X1 || segs[i].Y0 != segs[i-1].Y1 {
					t.Errorf("gap between segments %d and %d", i-1, i)
				}
			}
		})
	}
}

func TestFlattenerZeroFlatness(t *testing.T) {
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 2, Y: 30}}) &&
			yield(path.CmdQuadTo, []vec.Vec2{{X: 16, Y: 2}, {X: 30, Y: 30}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: 30, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 30}})
	}

	want := NewFlattener(32, 32).Segments(p, nil)
	for _, flatness := range []float64{0, -1, math.NaN()} {
		f := &Flattener{CTM: matrix.Identity, Flatness: flatness}
		got := f.Segments(p, nil)
		if !slices.Equal(got, want) {
			t.Errorf("flatness %g: got %d segments, want %d", flatness, len(got), len(want))
		}
	}
}
