package testcases

import "seehuhn.de/go/preview"

var clipCases = []TestCase{
	{
		Name:   "crossing",
		Width:  20,
		Height: 10,
		Groups: []preview.Group{
			group("crossing", opaqueRed, seg(-10, -10, 30, 20), seg(25, -5, -5, 12)),
		},
	},
	{
		Name:   "outside",
		Width:  10,
		Height: 10,
		Groups: []preview.Group{
			group("outside", opaqueWhite,
				seg(-5, -5, -1, -1), seg(10, 0, 20, 9), seg(0, 10, 9, 10), seg(-3, 4, -3, 4)),
		},
	},
	{
		Name:   "border",
		Width:  10,
		Height: 10,
		Groups: []preview.Group{
			group("frame", opaqueGreen,
				seg(0, 0, 9, 0), seg(9, 0, 9, 9), seg(9, 9, 0, 9), seg(0, 9, 0, 0)),
		},
	},
	{
		Name:   "far_away",
		Width:  8,
		Height: 8,
		Groups: []preview.Group{
			group("far", opaqueBlue, seg(-1000, 3, 1000, 3)),
		},
	},
}
