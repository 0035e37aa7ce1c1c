package testcases

import "seehuhn.de/go/preview"

var octantCases = []TestCase{
	{
		Name:   "burst",
		Width:  41,
		Height: 41,
		Groups: []preview.Group{
			group("burst", opaqueWhite, burst(20, 20, 18)...),
		},
	},
	{
		Name:   "burst_reversed",
		Width:  41,
		Height: 41,
		Groups: []preview.Group{
			group("burst", opaqueWhite, reversed(burst(20, 20, 18))...),
		},
	},
	{
		Name:   "shallow_and_steep",
		Width:  24,
		Height: 24,
		Groups: []preview.Group{
			group("shallow", opaqueRed, seg(0, 0, 23, 5), seg(23, 18, 0, 23)),
			group("steep", opaqueGreen, seg(0, 0, 5, 23), seg(18, 23, 23, 0)),
		},
	},
}

// burst returns segments from (cx, cy) to 16 points on the border of a
// square of half-width r, covering all eight octants.
func burst(cx, cy, r int) []preview.Segment {
	h := r / 2
	ends := [][2]int{
		{r, 0}, {r, h}, {r, r}, {h, r},
		{0, r}, {-h, r}, {-r, r}, {-r, h},
		{-r, 0}, {-r, -h}, {-r, -r}, {-h, -r},
		{0, -r}, {h, -r}, {r, -r}, {r, -h},
	}
	segs := make([]preview.Segment, len(ends))
	for i, e := range ends {
		segs[i] = seg(cx, cy, cx+e[0], cy+e[1])
	}
	return segs
}

// reversed returns the segments with start and end point swapped.
func reversed(segs []preview.Segment) []preview.Segment {
	res := make([]preview.Segment, len(segs))
	for i, s := range segs {
		res[i] = seg(s.X1, s.Y1, s.X0, s.Y0)
	}
	return res
}
