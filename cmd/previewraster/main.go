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

// Command previewraster renders a scene file to an image file.
//
// Usage:
//
//	previewraster -in scene.yaml -out preview.png [-format png|bmp|tiff] [-scale n]
//
// The output format defaults to the extension of the output file name.
// Logging is configured through the PREVIEW_LOG_* environment variables.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/preview"
	"seehuhn.de/go/preview/internal/log"
	"seehuhn.de/go/preview/scene"
)

// maxOutputPixels limits the size of the output image, 1 GiB as RGBA.
const maxOutputPixels = 1 << 28

func main() {
	in := flag.String("in", "", "scene file (.yaml, .yml or .json)")
	out := flag.String("out", "", "output image file")
	format := flag.String("format", "", "output format: png, bmp or tiff")
	scale := flag.Int("scale", 1, "integer magnification factor")
	flag.Parse()

	logger, closeLog := log.New(os.Stderr, log.FromEnv())
	defer closeLog()
	preview.SetLogger(logger)

	err := run(logger, *in, *out, *format, *scale)
	if err != nil {
		logger.Error("rendering failed", slog.Any("err", err))
		closeLog()
		os.Exit(1)
	}
}

func run(logger *slog.Logger, in, out, format string, scale int) error {
	if in == "" || out == "" {
		return errors.New("both -in and -out are required")
	}
	if scale < 1 {
		return fmt.Errorf("invalid scale %d", scale)
	}
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
	}
	enc, err := encoder(format)
	if err != nil {
		return err
	}

	s, err := scene.Load(in)
	if err != nil {
		return err
	}
	groups, err := s.Groups()
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	c, err := preview.NewCanvas(s.Width, s.Height)
	if err != nil {
		return err
	}
	if len(c.Pix) == 0 {
		return fmt.Errorf("%s: empty canvas %dx%d", in, s.Width, s.Height)
	}
	if px := c.Width * c.Height; px > maxOutputPixels/scale || px*scale > maxOutputPixels/scale {
		return fmt.Errorf("scale %d too large for a %dx%d scene", scale, c.Width, c.Height)
	}
	c.DrawGroups(groups)

	var img image.Image = c.Image()
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}

	fd, err := os.Create(out)
	if err != nil {
		return err
	}
	err = enc(fd, img)
	if err2 := fd.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}

	logger.Info("wrote preview",
		slog.String("scene", in),
		slog.String("out", out),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()),
		slog.Int("groups", len(groups)))
	return nil
}

// encoder returns the image encoder for the given format name.
func encoder(format string) (func(io.Writer, image.Image) error, error) {
	switch format {
	case "png":
		return png.Encode, nil
	case "bmp":
		return bmp.Encode, nil
	case "tif", "tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}
