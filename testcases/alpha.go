package testcases

import (
	"image"

	"seehuhn.de/go/preview"
)

var alphaCases = []TestCase{
	{
		Name:   "red_over_blue",
		Width:  16,
		Height: 16,
		Groups: []preview.Group{
			group("blue", halfBlue, seg(0, 8, 15, 8)),
			group("red", halfRed, seg(8, 0, 8, 15)),
		},
		Want: map[image.Point][4]byte{
			{8, 0}: {0, 0, 128, 128},
			{0, 8}: {128, 0, 0, 128},
			{8, 8}: {63, 0, 128, 191},
		},
	},
	{
		Name:   "blue_over_red",
		Width:  16,
		Height: 16,
		Groups: []preview.Group{
			group("red", halfRed, seg(8, 0, 8, 15)),
			group("blue", halfBlue, seg(0, 8, 15, 8)),
		},
		Want: map[image.Point][4]byte{
			{8, 8}: {128, 0, 63, 191},
		},
	},
	{
		Name:   "self_overlap",
		Width:  16,
		Height: 16,
		Groups: []preview.Group{
			group("hatch", halfRed, seg(0, 0, 15, 15), seg(15, 0, 0, 15), seg(0, 7, 15, 7)),
		},
		// the horizontal line crosses each diagonal in one pixel
		Want: map[image.Point][4]byte{
			{0, 0}:  {0, 0, 128, 128},
			{7, 8}:  {0, 0, 128, 128},
			{0, 7}:  {0, 0, 128, 128},
			{7, 7}:  {0, 0, 191, 191},
			{8, 7}:  {0, 0, 191, 191},
			{15, 7}: {0, 0, 128, 128},
		},
	},
	{
		Name:   "faint_layers",
		Width:  8,
		Height: 8,
		Groups: []preview.Group{
			group("a", faintYellow, seg(0, 4, 7, 4)),
			group("b", faintYellow, seg(0, 4, 7, 4)),
			group("c", faintYellow, seg(0, 4, 7, 4)),
			group("d", opaqueBlue, seg(3, 0, 3, 7)),
		},
		Want: map[image.Point][4]byte{
			{0, 4}: {0, 101, 101, 101},
			{7, 4}: {0, 101, 101, 101},
			{3, 4}: {255, 0, 0, 255},
			{3, 0}: {255, 0, 0, 255},
			{0, 3}: {0, 0, 0, 0},
		},
	},
}
