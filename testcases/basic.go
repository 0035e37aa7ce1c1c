package testcases

import "seehuhn.de/go/preview"

var basicCases = []TestCase{
	{
		Name:   "two_pixels_red",
		Width:  2,
		Height: 1,
		Groups: []preview.Group{
			group("red", opaqueRed, seg(0, 0, 1, 0)),
		},
	},
	{
		Name:   "transparent_dot",
		Width:  1,
		Height: 1,
		Groups: []preview.Group{
			group("clear", preview.Color{}, seg(0, 0, 0, 0)),
		},
	},
	{
		Name:   "empty_canvas",
		Width:  16,
		Height: 16,
	},
	{
		Name:   "hidden_and_empty",
		Width:  16,
		Height: 16,
		Groups: []preview.Group{
			hidden("hidden", opaqueWhite, seg(0, 0, 15, 15)),
			group("empty", opaqueWhite),
		},
	},
	{
		Name:   "rgb_axes",
		Width:  32,
		Height: 32,
		Groups: []preview.Group{
			group("x", opaqueRed, seg(2, 2, 29, 2)),
			group("y", opaqueGreen, seg(2, 2, 2, 29)),
			group("diagonal", opaqueBlue, seg(2, 2, 29, 29)),
		},
	},
	{
		Name:   "clamped_color",
		Width:  8,
		Height: 8,
		Groups: []preview.Group{
			group("wild", preview.Color{R: 300, G: -20, B: 128, A: 999}, seg(0, 7, 7, 0)),
		},
	},
}
