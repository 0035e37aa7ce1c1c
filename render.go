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

// Package preview rasterizes groups of one pixel wide line segments into a
// premultiplied BGRA pixel buffer.
//
// Each [Group] carries a straight RGBA color and a visibility flag shared by
// all of its segments.  Segments are traced with an integer Bresenham line
// and composited with the Porter-Duff "over" operator; groups are painted
// in order, later groups on top.  The output of [Rasterize] is a tightly
// packed byte slice with 4 bytes per pixel in the order B, G, R, A, which
// matches the common "ARGB32 premultiplied" little-endian pixel format.
//
// All arithmetic is integer arithmetic and the result is bit-exact: the same
// input always produces the same bytes.
package preview

//go:generate go run ./testcases/export

import "log/slog"

// Group is a list of segments which are drawn with a common color.
type Group struct {
	// Name identifies the group in log messages and scene files.
	Name string

	// Segments are drawn in order.
	Segments []Segment

	// Color is the straight (not premultiplied) color of all segments.
	// Channel values outside [0, 255] are clamped.
	Color Color

	// Visible must be set for the group to be drawn.
	Visible bool
}

// Rasterize draws the groups onto a new, fully transparent canvas of the
// given size and returns the pixel data.
//
// The result has length 4*width*height, with pixels in row-major order and
// bytes in the order B, G, R, A, premultiplied by alpha.  If width or height
// is not positive, the result is empty.  An error is returned only if the
// canvas is too large to allocate.
func Rasterize(width, height int, groups []Group) ([]byte, error) {
	c, err := NewCanvas(width, height)
	if err != nil {
		return nil, err
	}
	if len(c.Pix) == 0 {
		return []byte{}, nil
	}

	Logger().Debug("rasterize",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("groups", len(groups)))

	c.DrawGroups(groups)
	return c.Pix, nil
}
