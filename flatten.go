// seehuhn.de/go/preview - a headless line preview rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package preview

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Flattener converts vector paths into integer pixel segments for use in a
// [Group].  A Flattener holds no state between calls and can be reused.
type Flattener struct {
	// CTM transforms from user space to device (pixel) space.
	CTM matrix.Matrix

	// Clip is the device-space rectangle of interest, normally the canvas.
	// Segments which cannot touch any pixel in Clip are dropped.
	// The zero rectangle disables this test.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	// Values which are not positive select the default tolerance.
	Flatness float64
}

// NewFlattener returns a Flattener for a canvas of the given size, with the
// identity transformation and the default flatness.
func NewFlattener(width, height int) *Flattener {
	return &Flattener{
		CTM:      matrix.Identity,
		Clip:     rect.Rect{URx: float64(width), URy: float64(height)},
		Flatness: defaultFlatness,
	}
}

// defaultFlatness is the default curve flattening tolerance in device
// pixels.  Curves drawn one pixel wide need no finer approximation.
const defaultFlatness = 0.5

// Segments appends the segments of p to dst and returns the extended slice.
//
// Line, quadratic and cubic path elements are converted to device space and
// rounded to the nearest pixel.  Closed subpaths get a closing segment.
// A piece which rounds to a single pixel is kept only when it is the first
// piece of its subpath, so that isolated dots remain visible.
func (f *Flattener) Segments(p path.Path, dst []Segment) []Segment {
	var current, subpath vec.Vec2
	inSubpath := false
	firstPiece := false

	emit := func(from, to vec.Vec2) {
		s := Segment{}
		s.X0, s.Y0 = f.device(from)
		s.X1, s.Y1 = f.device(to)
		first := firstPiece
		firstPiece = false
		if s.X0 == s.X1 && s.Y0 == s.Y1 && !first {
			return
		}
		if !f.visible(s) {
			return
		}
		dst = append(dst, s)
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			subpath = current
			inSubpath = true
			firstPiece = true

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			emit(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			f.flattenQuadratic(current, pts[0], pts[1], emit)
			current = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			f.flattenCubic(current, pts[0], pts[1], pts[2], emit)
			current = pts[2]

		case path.CmdClose:
			if inSubpath && current != subpath {
				emit(current, subpath)
			}
			current = subpath
		}
	}
	return dst
}

// device maps a user space point to the nearest device pixel.
func (f *Flattener) device(p vec.Vec2) (int, int) {
	x := f.CTM[0]*p.X + f.CTM[2]*p.Y + f.CTM[4]
	y := f.CTM[1]*p.X + f.CTM[3]*p.Y + f.CTM[5]
	return int(math.Floor(x + 0.5)), int(math.Floor(y + 0.5))
}

// visible reports whether the bounding box of s intersects the clip
// rectangle.  Pixel (x, y) covers the square [x, x+1) × [y, y+1).
func (f *Flattener) visible(s Segment) bool {
	if f.Clip == (rect.Rect{}) {
		return true
	}
	xMin, xMax := float64(min(s.X0, s.X1)), float64(max(s.X0, s.X1))+1
	yMin, yMax := float64(min(s.Y0, s.Y1)), float64(max(s.Y0, s.Y1))+1
	return xMax > f.Clip.LLx && xMin < f.Clip.URx &&
		yMax > f.Clip.LLy && yMin < f.Clip.URy
}

func (f *Flattener) tolerance() float64 {
	if f.Flatness > 0 {
		return f.Flatness
	}
	return defaultFlatness
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
func (f *Flattener) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.CTM[0]*v.X + f.CTM[2]*v.Y,
		Y: f.CTM[1]*v.X + f.CTM[3]*v.Y,
	}
}

// flattenQuadratic splits a quadratic Bézier into line pieces.
// All points are in user space; the tolerance is measured in device space.
func (f *Flattener) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	tol := f.tolerance()
	errDev := f.transformLinear(e).Length()
	if errDev > tol {
		n = int(math.Ceil(math.Sqrt(errDev / tol)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic splits a cubic Bézier into line pieces, choosing the number
// of pieces with Wang's formula.
func (f *Flattener) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := f.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := f.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		nFloat := math.Sqrt(3 * m / (4 * f.tolerance()))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}
