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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/preview"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 with a cubic Bézier curve.
const kappa = 0.5522847498

var pathCases = []TestCase{
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Groups: []preview.Group{
			group("triangle", opaqueWhite, flatten(64, 64, polygon(pt(10, 50), pt(32, 10), pt(54, 50)))...),
		},
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Groups: []preview.Group{
			group("star", opaqueGreen, flatten(64, 64, star(5, 32, 32, 25))...),
		},
	},
	{
		Name:   "circle_and_square",
		Width:  64,
		Height: 64,
		Groups: []preview.Group{
			group("square", halfBlue, flatten(64, 64, polygon(pt(12, 12), pt(52, 12), pt(52, 52), pt(12, 52)))...),
			group("circle", halfRed, flatten(64, 64, circle(32, 32, 20))...),
		},
	},
	{
		Name:   "zigzag_scaled",
		Width:  64,
		Height: 32,
		Groups: []preview.Group{
			group("zigzag", opaqueRed,
				flattenCTM(64, 32, matrix.Matrix{2, 0, 0, 2, 0, 0}, zigzag(5, 2, 8, 30, 6))...),
		},
	},
	{
		Name:   "clipped_circle",
		Width:  32,
		Height: 32,
		Groups: []preview.Group{
			group("circle", opaqueWhite, flatten(32, 32, circle(0, 0, 24))...),
		},
	},
}

// flatten converts a path in device coordinates into segments.
func flatten(width, height int, p *path.Data) []preview.Segment {
	f := preview.NewFlattener(width, height)
	return f.Segments(p.Iter(), nil)
}

// flattenCTM converts a path into segments, using the given
// transformation from user space to device space.
func flattenCTM(width, height int, ctm matrix.Matrix, p *path.Data) []preview.Segment {
	f := preview.NewFlattener(width, height)
	f.CTM = ctm
	return f.Segments(p.Iter(), nil)
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) *path.Data {
	return polyline(pts...).Close()
}

// star builds a self-intersecting n-pointed star by joining every second
// vertex of a regular n-gon.  n must be odd.
func star(n int, cx, cy, r float64) *path.Data {
	pts := make([]vec.Vec2, n)
	for k := range n {
		angle := float64(2*k%n)*2*math.Pi/float64(n) - math.Pi/2
		pts[k] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(pts...)
}

// circle approximates a circle by four cubic Bézier arcs, starting at the
// rightmost point and running clockwise on screen.
func circle(cx, cy, r float64) *path.Data {
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+k), pt(cx+k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-k, cy+r), pt(cx-r, cy+k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-k), pt(cx-k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+k, cy-r), pt(cx+r, cy-k), pt(cx+r, cy)).
		Close()
}

// zigzag builds an open line with the given number of legs, alternating
// between cy-amplitude and cy+amplitude.
func zigzag(legs int, x1, cy, x2, amplitude float64) *path.Data {
	pts := []vec.Vec2{pt(x1, cy)}
	step := (x2 - x1) / float64(legs)
	for i := 1; i <= legs; i++ {
		y := cy - amplitude
		if i%2 == 0 {
			y = cy + amplitude
		}
		pts = append(pts, pt(x1+float64(i)*step, y))
	}
	return polyline(pts...)
}
