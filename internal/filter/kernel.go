package filter

import "math"

// Passes is the number of box passes used to approximate a Gaussian.
// Three passes keep the error against a true Gaussian under 3%.
const Passes = 3

// SigmaForRadius maps an intrinsic-blur radius to a Gaussian sigma.
// This is the mapping platform intrinsic blurs use (sigma = 0.4r + 0.6),
// so a radius of 25 matches their strongest setting.
func SigmaForRadius(radius int) float64 {
	if radius <= 0 {
		return 0
	}
	return 0.4*float64(radius) + 0.6
}

// BoxSizesForGauss returns n odd box widths whose successive application
// approximates a Gaussian with the given sigma.
//
// The widths are the two odd integers wl and wl+2 bracketing the ideal
// width sqrt(12σ²/n + 1); the split between them is chosen so the combined
// variance matches σ².
//
// For sigma <= 0 or n <= 0, returns n boxes of width 1 (identity).
func BoxSizesForGauss(sigma float64, n int) []int {
	if n <= 0 {
		return nil
	}
	sizes := make([]int, n)
	if sigma <= 0 {
		for i := range sizes {
			sizes[i] = 1
		}
		return sizes
	}

	fn := float64(n)
	wIdeal := math.Sqrt(12*sigma*sigma/fn + 1)
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2

	fwl := float64(wl)
	mIdeal := (12*sigma*sigma - fn*fwl*fwl - 4*fn*fwl - 3*fn) / (-4*fwl - 4)
	m := int(math.Round(mIdeal))

	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

// BoxRadius returns the half-width of an odd box width.
func BoxRadius(size int) int {
	if size <= 1 {
		return 0
	}
	return (size - 1) / 2
}
