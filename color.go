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

// Color is a straight (non-premultiplied) 8-bit RGBA color.
// The channels are plain ints so that values from loosely typed sources
// survive until they are clamped by [Color.Premultiply].
type Color struct {
	R, G, B, A int
}

// Premultiplied is a color whose R, G and B channels have been scaled by A.
// A doubles as the coverage used when the color is composited.
type Premultiplied struct {
	R, G, B, A uint8
}

// Premultiply clamps all four channels to [0, 255] and scales the color
// channels by alpha, rounding as (c*a + 127) / 255.
func (c Color) Premultiply() Premultiplied {
	r := clamp255(c.R)
	g := clamp255(c.G)
	b := clamp255(c.B)
	a := clamp255(c.A)
	return Premultiplied{
		R: uint8((r*a + 127) / 255),
		G: uint8((g*a + 127) / 255),
		B: uint8((b*a + 127) / 255),
		A: uint8(a),
	}
}

// clamp255 limits v to the range [0, 255].
func clamp255(v int) int {
	return max(0, min(255, v))
}
