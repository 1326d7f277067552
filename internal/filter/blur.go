package filter

// GaussianBlur applies a three-pass box approximation of a Gaussian blur
// with the given sigma to the RGBA8 pixels in src and returns a new slice.
// src must hold exactly width*height*4 bytes and is not modified.
func GaussianBlur(src []uint8, width, height int, sigma float64) []uint8 {
	dst := make([]uint8, len(src))
	copy(dst, src)
	if sigma <= 0 {
		return dst
	}

	temp := make([]uint8, len(src))
	for _, size := range BoxSizesForGauss(sigma, Passes) {
		r := BoxRadius(size)
		if r == 0 {
			continue
		}
		// Each pass: horizontal (dst -> temp), vertical (temp -> dst).
		BoxBlurHorizontal(dst, temp, width, height, r)
		BoxBlurVertical(temp, dst, width, height, r)
	}
	return dst
}

// BoxBlurHorizontal convolves each row of src with a box of half-width
// radius and writes the result to dst. Samples past the row ends repeat
// the edge pixel.
func BoxBlurHorizontal(src, dst []uint8, width, height, radius int) {
	if radius <= 0 {
		copy(dst, src)
		return
	}
	div := 2*radius + 1
	half := div / 2
	stride := width * 4

	for y := 0; y < height; y++ {
		row := y * stride
		for c := 0; c < 4; c++ {
			sum := 0
			for k := -radius; k <= radius; k++ {
				sum += int(src[row+clampInt(k, 0, width-1)*4+c])
			}
			for x := 0; x < width; x++ {
				dst[row+x*4+c] = uint8((sum + half) / div)

				out := clampInt(x-radius, 0, width-1)
				in := clampInt(x+radius+1, 0, width-1)
				sum += int(src[row+in*4+c]) - int(src[row+out*4+c])
			}
		}
	}
}

// BoxBlurVertical convolves each column of src with a box of half-width
// radius and writes the result to dst. Samples past the column ends repeat
// the edge pixel.
func BoxBlurVertical(src, dst []uint8, width, height, radius int) {
	if radius <= 0 {
		copy(dst, src)
		return
	}
	div := 2*radius + 1
	half := div / 2
	stride := width * 4

	for x := 0; x < width; x++ {
		col := x * 4
		for c := 0; c < 4; c++ {
			sum := 0
			for k := -radius; k <= radius; k++ {
				sum += int(src[clampInt(k, 0, height-1)*stride+col+c])
			}
			for y := 0; y < height; y++ {
				dst[y*stride+col+c] = uint8((sum + half) / div)

				out := clampInt(y-radius, 0, height-1)
				in := clampInt(y+radius+1, 0, height-1)
				sum += int(src[in*stride+col+c]) - int(src[out*stride+col+c])
			}
		}
	}
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
