package blurview

import "testing"

// Test helper functions shared across blurview tests.

// mustPixmap creates a pixmap or fails the test.
func mustPixmap(t testing.TB, w, h int) *Pixmap {
	t.Helper()
	pm, err := NewPixmap(w, h)
	if err != nil {
		t.Fatalf("NewPixmap(%d, %d) = %v", w, h, err)
	}
	return pm
}

// filledPixmap creates a pixmap filled with the given color.
func filledPixmap(t testing.TB, w, h int, c RGBA) *Pixmap {
	t.Helper()
	pm := mustPixmap(t, w, h)
	pm.Clear(c)
	return pm
}

// colorApproxEqual compares two colors with tolerance.
func colorApproxEqual(a, b RGBA, tolerance float64) bool {
	return absf(a.R-b.R) < tolerance &&
		absf(a.G-b.G) < tolerance &&
		absf(a.B-b.B) < tolerance &&
		absf(a.A-b.A) < tolerance
}

// absf returns the absolute value of a float64.
func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
