package filter

// Test helper functions shared across filter tests.

// newTestBuffer creates a width*height RGBA8 buffer filled with one color.
func newTestBuffer(w, h int, r, g, b, a uint8) []uint8 {
	buf := make([]uint8, w*h*4)
	for i := 0; i < len(buf); i += 4 {
		buf[i+0] = r
		buf[i+1] = g
		buf[i+2] = b
		buf[i+3] = a
	}
	return buf
}

// setTestPixel writes one pixel into a buffer created by newTestBuffer.
func setTestPixel(buf []uint8, w, x, y int, r, g, b, a uint8) {
	i := (y*w + x) * 4
	buf[i+0] = r
	buf[i+1] = g
	buf[i+2] = b
	buf[i+3] = a
}

// pixelAt returns the four channels of a pixel.
func pixelAt(buf []uint8, w, x, y int) [4]uint8 {
	i := (y*w + x) * 4
	return [4]uint8{buf[i+0], buf[i+1], buf[i+2], buf[i+3]}
}

// formatInt formats an integer without using fmt.
func formatInt(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}
