package testcases

import (
	"fmt"

	"seehuhn.de/go/preview"
)

var largeCases = []TestCase{
	{
		Name:   "grid",
		Width:  512,
		Height: 512,
		Groups: []preview.Group{
			group("grid", preview.Color{R: 0, G: 200, B: 255, A: 160}, grid(512, 512, 16)...),
		},
	},
	{
		Name:   "fan",
		Width:  640,
		Height: 480,
		Groups: fan(640, 480, 24),
	},
}

// grid returns horizontal and vertical lines with the given spacing.
func grid(width, height, step int) []preview.Segment {
	var segs []preview.Segment
	for x := 0; x < width; x += step {
		segs = append(segs, seg(x, 0, x, height-1))
	}
	for y := 0; y < height; y += step {
		segs = append(segs, seg(0, y, width-1, y))
	}
	return segs
}

// fan returns n groups of lines radiating from the bottom-left corner,
// each group in a different translucent color.
func fan(width, height, n int) []preview.Group {
	groups := make([]preview.Group, n)
	for i := range n {
		x := (width - 1) * i / (n - 1)
		c := preview.Color{
			R: 255 * i / (n - 1),
			G: 128,
			B: 255 - 255*i/(n-1),
			A: 96 + 6*i,
		}
		groups[i] = group(fmt.Sprintf("fan%02d", i), c,
			seg(0, height-1, x, 0),
			seg(0, height-1, width-1, height-1-(height-1)*i/(n-1)))
	}
	return groups
}
