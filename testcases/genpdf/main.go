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

// Command genpdf writes a vector PDF proof sheet for every test case.
// Each visible group is stroked as one unit wide lines through the pixel
// centres, in a grey level matching the luminance of the group color,
// so that the raster output can be compared against a PDF viewer.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/preview"
	"seehuhn.de/go/preview/testcases"
)

const proofDir = "testdata/proof"

func main() {
	if err := os.MkdirAll(proofDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(proofDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, like a transparent canvas on a dark viewer
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; canvas rows run top to bottom.
	// Pixel (x, y) has its centre at (x+0.5, y+0.5).
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0.5, float64(tc.Height) - 0.5})

	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapSquare)
	page.SetLineJoin(graphics.LineJoinMiter)

	for _, g := range tc.Groups {
		if !g.Visible || len(g.Segments) == 0 {
			continue
		}
		page.SetStrokeColor(color.DeviceGray(luminance(g.Color)))
		for _, s := range g.Segments {
			page.MoveTo(float64(s.X0), float64(s.Y0))
			page.LineTo(float64(s.X1), float64(s.Y1))
		}
		page.Stroke()
	}

	return page.Close()
}

// luminance returns the grey level of a color composited over black,
// in the range 0 to 1.
func luminance(c preview.Color) float64 {
	p := c.Premultiply()
	y := 0.299*float64(p.R) + 0.587*float64(p.G) + 0.114*float64(p.B)
	return y / 255
}
