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
	"errors"
	"image"
	"log/slog"
	"math"
)

// ErrCanvasTooLarge is returned when the pixel buffer for the requested
// canvas size cannot be addressed.
var ErrCanvasTooLarge = errors.New("preview: canvas too large")

// Canvas is a premultiplied-alpha pixel buffer.
//
// Pixels are stored row-major, top to bottom, with 4 bytes per pixel in the
// order B, G, R, A and no padding between rows.  In every pixel the B, G
// and R values are at most A.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	Width  int
	Height int
	Pix    []byte // len(Pix) == 4*Width*Height
}

// NewCanvas allocates a fully transparent canvas.  If width or height is
// not positive, the canvas is empty: it has zero size and no pixels.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return &Canvas{}, nil
	}
	if width > math.MaxInt/4/height {
		return nil, ErrCanvasTooLarge
	}
	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]byte, 4*width*height),
	}, nil
}

// BlendOver composites src over the pixel at (x, y) using the Porter-Duff
// "over" operator:
//
//	dst = src + dst*(255-src.A)/255
//
// with truncating integer division.  Positions outside the canvas are
// ignored.
func (c *Canvas) BlendOver(x, y int, src Premultiplied) {
	if uint(x) >= uint(c.Width) || uint(y) >= uint(c.Height) {
		return
	}
	i := 4 * (y*c.Width + x)
	p := c.Pix[i : i+4 : i+4]
	inv := 255 - uint32(src.A)
	p[0] = src.B + uint8(uint32(p[0])*inv/255)
	p[1] = src.G + uint8(uint32(p[1])*inv/255)
	p[2] = src.R + uint8(uint32(p[2])*inv/255)
	p[3] = src.A + uint8(uint32(p[3])*inv/255)
}

// DrawGroups composites the groups onto the canvas in the given order, so
// that later groups appear on top of earlier ones.  Groups which are not
// visible or have no segments are skipped.
func (c *Canvas) DrawGroups(groups []Group) {
	log := Logger()
	for i := range groups {
		g := &groups[i]
		if !g.Visible || len(g.Segments) == 0 {
			log.Debug("skipping group",
				slog.Int("index", i),
				slog.String("name", g.Name),
				slog.Bool("visible", g.Visible),
				slog.Int("segments", len(g.Segments)))
			continue
		}

		src := g.Color.Premultiply()
		plot := func(x, y int) {
			c.BlendOver(x, y, src)
		}
		for _, s := range g.Segments {
			TraceLine(s, plot)
		}
	}
}

// Image returns a copy of the canvas as an [image.RGBA].  Both use
// premultiplied alpha, so only the channel order changes.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for i := 0; i+4 <= len(c.Pix); i += 4 {
		img.Pix[i+0] = c.Pix[i+2]
		img.Pix[i+1] = c.Pix[i+1]
		img.Pix[i+2] = c.Pix[i+0]
		img.Pix[i+3] = c.Pix[i+3]
	}
	return img
}
