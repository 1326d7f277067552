package blurview

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/blurview/internal/filter"
)

// Radius bounds and the fixed downscale policy.
const (
	// MinRadius is the smallest effective blur radius.
	MinRadius = 1

	// MaxRadius is the largest effective blur radius. Larger radii are
	// visually indistinguishable and only cost more time.
	MaxRadius = 25

	// DefaultScale is the downscale factor applied before blurring.
	// 0.5 processes a quarter of the source pixels.
	DefaultScale = 0.5
)

// ClampRadius clamps a requested radius into [MinRadius, MaxRadius].
// Values <= 0 become MinRadius; a radius of 0 meaning "no blur" is handled
// by callers before they reach the engine.
func ClampRadius(radius int) int {
	if radius < MinRadius {
		return MinRadius
	}
	if radius > MaxRadius {
		return MaxRadius
	}
	return radius
}

// ScaledSize returns the dimensions Downscale produces for a width x height
// buffer: max(1, round(width*factor)) x max(1, round(height*factor)).
func ScaledSize(width, height int, factor float64) (int, int) {
	w := int(math.Round(float64(width) * factor))
	h := int(math.Round(float64(height) * factor))
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}

// Downscale returns a new pixmap resampled by factor, which must be in
// (0, 1]. Sampling is nearest-neighbor; edges are not treated specially.
// The source is not modified, and the result never aliases it.
func Downscale(p *Pixmap, factor float64) (*Pixmap, error) {
	if !p.valid() {
		return nil, &BlurEngineError{Op: "downscale", Err: ErrInvalidPixmap}
	}
	if !(factor > 0 && factor <= 1) {
		return nil, &BlurEngineError{Op: "downscale", Err: fmt.Errorf("%w: %v", ErrInvalidScale, factor)}
	}

	w, h := ScaledSize(p.width, p.height, factor)
	dst, err := NewPixmap(w, h)
	if err != nil {
		return nil, &BlurEngineError{Op: "downscale", Err: err}
	}
	if w == p.width && h == p.height {
		copy(dst.data, p.data)
		return dst, nil
	}

	draw.NearestNeighbor.Scale(dst.NRGBA(), dst.Bounds(), p.NRGBA(), p.Bounds(), draw.Src, nil)
	return dst, nil
}

// ApplyBlur returns a blurred copy of p with the same dimensions.
//
// The filter is a separable approximate Gaussian: three box passes, each
// horizontal then vertical, sized for sigma = 0.4*radius + 0.6. Channels
// are filtered independently with no alpha premultiplication. The radius
// is clamped with ClampRadius.
//
// A registered BlurAccelerator is tried first; on any error the software
// kernel runs instead.
func ApplyBlur(p *Pixmap, radius int) (*Pixmap, error) {
	if !p.valid() {
		return nil, &BlurEngineError{Op: "blur", Err: ErrInvalidPixmap}
	}
	radius = ClampRadius(radius)

	if out, ok := accelerateBlur(p, radius); ok {
		return out, nil
	}

	data := filter.GaussianBlur(p.data, p.width, p.height, filter.SigmaForRadius(radius))
	return &Pixmap{width: p.width, height: p.height, data: data}, nil
}

// accelerateBlur runs the registered accelerator, if any.
// Returns false when the software kernel must run instead.
func accelerateBlur(p *Pixmap, radius int) (out *Pixmap, ok bool) {
	a := Accelerator()
	if a == nil {
		return nil, false
	}

	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("accelerated blur panicked, using CPU",
				"accelerator", a.Name(), "panic", r)
			out, ok = nil, false
		}
	}()

	dst, err := NewPixmap(p.width, p.height)
	if err != nil {
		return nil, false
	}
	if err := a.Blur(dst, p, radius); err != nil {
		if !errors.Is(err, ErrFallbackToCPU) {
			Logger().Warn("accelerated blur failed, using CPU",
				"accelerator", a.Name(), "error", err)
		}
		return nil, false
	}
	if !dst.valid() || dst.width != p.width || dst.height != p.height {
		Logger().Warn("accelerator changed pixmap size, using CPU", "accelerator", a.Name())
		return nil, false
	}
	return dst, true
}

// Blur produces a display-ready blurred buffer from src.
//
// It clamps radius, downscales src by DefaultScale and blurs the result.
// The returned pixmap is at the reduced size; presentation scaling is the
// display layer's job. src is not modified. On failure the error is a
// *BlurEngineError and callers should fall back to src.
func Blur(src *Pixmap, radius int) (*Pixmap, error) {
	effective := ClampRadius(radius)

	small, err := Downscale(src, DefaultScale)
	if err != nil {
		return nil, err
	}

	Logger().Debug("blur",
		"src", fmt.Sprintf("%dx%d", src.width, src.height),
		"dst", fmt.Sprintf("%dx%d", small.width, small.height),
		"radius", radius, "effective", effective)

	return ApplyBlur(small, effective)
}
