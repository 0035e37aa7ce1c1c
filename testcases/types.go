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
	"image"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/preview"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string          // lowercase a-z, 0-9 and _ only
	Width  int             // canvas width in pixels
	Height int             // canvas height in pixels
	Groups []preview.Group // groups in painting order

	// Want optionally lists the expected B, G, R, A bytes of selected
	// pixels.
	Want map[image.Point][4]byte
}

// Common colors used by the test cases.
var (
	opaqueRed   = preview.Color{R: 255, A: 255}
	opaqueGreen = preview.Color{G: 255, A: 255}
	opaqueBlue  = preview.Color{B: 255, A: 255}
	opaqueWhite = preview.Color{R: 255, G: 255, B: 255, A: 255}
	halfRed     = preview.Color{R: 255, A: 128}
	halfBlue    = preview.Color{B: 255, A: 128}
	faintYellow = preview.Color{R: 255, G: 255, A: 40}
)

// seg is a shorthand for a segment literal.
func seg(x0, y0, x1, y1 int) preview.Segment {
	return preview.Segment{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// group builds a visible group.
func group(name string, c preview.Color, segs ...preview.Segment) preview.Group {
	return preview.Group{
		Name:     name,
		Segments: segs,
		Color:    c,
		Visible:  true,
	}
}

// hidden builds a group with the visibility flag cleared.
func hidden(name string, c preview.Color, segs ...preview.Segment) preview.Group {
	g := group(name, c, segs...)
	g.Visible = false
	return g
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
