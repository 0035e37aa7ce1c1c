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

import "math"

// MaxCoordinate bounds the magnitude of segment coordinates.  Segments
// with a coordinate outside [-MaxCoordinate, MaxCoordinate] are not drawn.
const MaxCoordinate = math.MaxInt >> 3

// Segment is a straight line between two integer pixel positions.
// Coordinates may lie outside the canvas.
type Segment struct {
	X0, Y0 int // start point
	X1, Y1 int // end point
}

// TraceLine calls visit for every pixel of the one pixel wide digital line
// from (s.X0, s.Y0) to (s.X1, s.Y1), in order from start to end.
//
// The pixels form an 8-connected path which contains both endpoints and
// visits no pixel twice.  Exactly max(|X1-X0|, |Y1-Y0|)+1 pixels are
// visited.  Only integer arithmetic is used.
//
// If a coordinate exceeds [MaxCoordinate] in magnitude, visit is not called.
func TraceLine(s Segment, visit func(x, y int)) {
	if !s.inRange() {
		return
	}

	dx, sx := abs(s.X1-s.X0), -1
	if s.X0 < s.X1 {
		sx = 1
	}
	dy, sy := -abs(s.Y1-s.Y0), -1
	if s.Y0 < s.Y1 {
		sy = 1
	}
	err := dx + dy

	x, y := s.X0, s.Y0

	for {
		visit(x, y)
		if x == s.X1 && y == s.Y1 {
			return
		}
		e2 := 2 * err
		// both steps can fire in the same iteration (diagonal move)
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (s Segment) inRange() bool {
	for _, v := range [4]int{s.X0, s.Y0, s.X1, s.Y1} {
		if v < -MaxCoordinate || v > MaxCoordinate {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
