package blurview

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestBitmapDrawableIntrinsicSize(t *testing.T) {
	d := NewBitmapDrawable(image.NewRGBA(image.Rect(3, 4, 13, 24)))
	if w, h := d.IntrinsicSize(); w != 10 || h != 20 {
		t.Errorf("IntrinsicSize() = %dx%d, want 10x20", w, h)
	}

	if w, h := NewBitmapDrawable(nil).IntrinsicSize(); w != 0 || h != 0 {
		t.Errorf("nil IntrinsicSize() = %dx%d, want 0x0", w, h)
	}
}

func TestBitmapDrawableDrawScales(t *testing.T) {
	src := filledPixmap(t, 2, 2, Red)
	dst := mustPixmap(t, 8, 8)

	if err := NewBitmapDrawable(src).Draw(dst); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	for _, p := range [][2]int{{0, 0}, {7, 7}, {3, 4}} {
		if c := dst.GetPixel(p[0], p[1]); !colorApproxEqual(c, Red, 0.01) {
			t.Errorf("pixel %v = %+v, want Red", p, c)
		}
	}

	if err := NewBitmapDrawable(nil).Draw(dst); !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("nil Draw() = %v, want ErrUnsupportedSource", err)
	}
}

func TestColorDrawable(t *testing.T) {
	d := NewColorDrawable(RGBA{0, 1, 0, 0.5})
	if w, h := d.IntrinsicSize(); w > 0 || h > 0 {
		t.Errorf("IntrinsicSize() = %dx%d, want non-positive", w, h)
	}

	dst := mustPixmap(t, 3, 3)
	if err := d.Draw(dst); err != nil {
		t.Fatal(err)
	}
	if c := dst.GetPixel(2, 2); !colorApproxEqual(c, RGBA{0, 1, 0, 0.5}, 0.01) {
		t.Errorf("pixel = %+v, want half-transparent green", c)
	}
}

func TestVectorDrawableFillsPath(t *testing.T) {
	// Square covering the left half of a 20x10 viewport.
	d := NewVectorDrawable(20, 10, Red).
		MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).LineTo(0, 10).Close()

	if w, h := d.IntrinsicSize(); w != 20 || h != 10 {
		t.Fatalf("IntrinsicSize() = %dx%d, want 20x10", w, h)
	}

	pm, err := Extract(d)
	if err != nil {
		t.Fatalf("Extract() = %v", err)
	}
	if c := pm.GetPixel(5, 5); !colorApproxEqual(c, Red, 0.01) {
		t.Errorf("inside pixel = %+v, want Red", c)
	}
	if c := pm.GetPixel(15, 5); c.A != 0 {
		t.Errorf("outside pixel = %+v, want transparent", c)
	}
}

func TestVectorDrawableScalesToDestination(t *testing.T) {
	d := NewVectorDrawable(10, 10, Blue).
		MoveTo(0, 0).LineTo(5, 0).LineTo(5, 10).LineTo(0, 10).Close()

	dst := mustPixmap(t, 40, 40)
	if err := d.Draw(dst); err != nil {
		t.Fatal(err)
	}
	if c := dst.GetPixel(10, 20); !colorApproxEqual(c, Blue, 0.01) {
		t.Errorf("scaled inside pixel = %+v, want Blue", c)
	}
	if c := dst.GetPixel(30, 20); c.A != 0 {
		t.Errorf("scaled outside pixel = %+v, want transparent", c)
	}
}

func TestVectorDrawableCurves(t *testing.T) {
	d := NewVectorDrawable(32, 32, White).
		MoveTo(16, 2).
		CubeTo(30, 2, 30, 30, 16, 30).
		QuadTo(2, 16, 16, 2).
		Close()

	pm, err := Extract(d)
	if err != nil {
		t.Fatalf("Extract() = %v", err)
	}
	if c := pm.GetPixel(16, 16); !colorApproxEqual(c, White, 0.01) {
		t.Errorf("center = %+v, want White", c)
	}
	if c := pm.GetPixel(0, 0); c.A != 0 {
		t.Errorf("corner = %+v, want transparent", c)
	}
}

func TestVectorDrawableEmptyAndMalformed(t *testing.T) {
	empty := NewVectorDrawable(4, 4, Red)
	pm, err := Extract(empty)
	if err != nil {
		t.Fatalf("Extract(empty) = %v", err)
	}
	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("empty path wrote byte %d", i)
		}
	}

	bad := NewVectorDrawable(4, 4, Red).LineTo(3, 3)
	_, err = Extract(bad)
	var ee *ExtractionError
	if !errors.As(err, &ee) || !errors.Is(err, ErrUnsupportedSource) {
		t.Errorf("Extract(path without MoveTo) = %v, want *ExtractionError(ErrUnsupportedSource)", err)
	}
}

func TestTextDrawable(t *testing.T) {
	d := NewTextDrawable("Hi", White)

	w, h := d.IntrinsicSize()
	if w != 14 || h != 13 {
		t.Fatalf("IntrinsicSize() = %dx%d, want 14x13 (7x13 face)", w, h)
	}

	pm, err := Extract(d)
	if err != nil {
		t.Fatalf("Extract() = %v", err)
	}

	inked := 0
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			if pm.GetPixel(x, y).A > 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("label rendered no pixels")
	}
	if inked == w*h {
		t.Error("label filled the whole background")
	}
}

func TestTextDrawableScaledWithBackground(t *testing.T) {
	d := &TextDrawable{Text: "A", Color: White, Background: Black}

	dst := mustPixmap(t, 21, 39)
	if err := d.Draw(dst); err != nil {
		t.Fatal(err)
	}
	if c := dst.GetPixel(0, 0); !colorApproxEqual(c, Black, 0.01) {
		t.Errorf("background = %+v, want Black", c)
	}
}

func TestTextDrawableEmpty(t *testing.T) {
	d := NewTextDrawable("", White)
	if w, h := d.IntrinsicSize(); w != 0 || h != 0 {
		t.Errorf("IntrinsicSize() = %dx%d, want 0x0", w, h)
	}

	pm, err := Extract(d)
	if err != nil {
		t.Fatalf("Extract() = %v", err)
	}
	if pm.Width() != 1 || pm.Height() != 1 {
		t.Errorf("size = %dx%d, want 1x1", pm.Width(), pm.Height())
	}
	if pm.At(0, 0) != (color.NRGBA{}) {
		t.Errorf("pixel = %v, want transparent", pm.At(0, 0))
	}
}
