package blurview

import (
	"fmt"
)

// Extract rasterizes d into a fresh RGBA8 pixmap.
//
// Bitmap drawables return their decoded pixels directly. Other drawables
// are drawn into a pixmap of their intrinsic size; when either intrinsic
// dimension is <= 0 the pixmap is 1x1 instead. The 1x1 rule does not
// apply to bitmaps: a bitmap with empty bounds has no pixels to show and
// fails with ErrInvalidDimensions.
//
// Every failure, including a panic inside d.Draw, is reported as an
// *ExtractionError. Callers should then display d unmodified.
func Extract(d Drawable) (pm *Pixmap, err error) {
	if d == nil {
		return nil, &ExtractionError{Source: "<nil>", Err: ErrNilSource}
	}
	source := fmt.Sprintf("%T", d)

	defer func() {
		if r := recover(); r != nil {
			pm = nil
			err = &ExtractionError{Source: source, Err: fmt.Errorf("%w: draw panicked: %v", ErrUnsupportedSource, r)}
		}
	}()

	if b, ok := d.(Bitmap); ok {
		decoded, berr := b.Pixmap()
		if berr != nil {
			return nil, &ExtractionError{Source: source, Err: berr}
		}
		if !decoded.valid() {
			return nil, &ExtractionError{Source: source, Err: ErrInvalidPixmap}
		}
		return decoded, nil
	}

	w, h := d.IntrinsicSize()
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}

	pm, err = NewPixmap(w, h)
	if err != nil {
		return nil, &ExtractionError{Source: source, Err: err}
	}
	if derr := d.Draw(pm); derr != nil {
		return nil, &ExtractionError{Source: source, Err: derr}
	}

	Logger().Debug("extracted drawable", "source", source, "width", w, "height", h)
	return pm, nil
}
