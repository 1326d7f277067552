package blurview

import (
	"errors"
	"fmt"
)

// Common errors for the blur pipeline.
var (
	// ErrNilSource is returned when Extract is called with a nil drawable.
	ErrNilSource = errors.New("blurview: nil source")

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("blurview: invalid dimensions")

	// ErrTooLarge is returned when a pixmap would exceed MaxPixmapBytes.
	ErrTooLarge = errors.New("blurview: pixmap too large")

	// ErrInvalidPixmap is returned for nil or zero-value pixmaps.
	ErrInvalidPixmap = errors.New("blurview: invalid pixmap")

	// ErrInvalidScale is returned when a downscale factor is outside (0, 1].
	ErrInvalidScale = errors.New("blurview: scale factor out of range")

	// ErrUnsupportedSource is returned by drawables that cannot rasterize
	// their content.
	ErrUnsupportedSource = errors.New("blurview: unsupported source")
)

// ExtractionError reports a drawable that could not be rasterized into a
// pixel buffer. Callers should display the original source instead.
type ExtractionError struct {
	// Source describes the drawable type (e.g. "*blurview.VectorDrawable").
	Source string

	// Err is the underlying cause.
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("blurview: extract %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ExtractionError) Unwrap() error { return e.Err }

// BlurEngineError reports a downscale or blur step that could not complete.
// Callers should display the pre-blur buffer or the original source.
type BlurEngineError struct {
	// Op is the failing stage: "downscale" or "blur".
	Op string

	// Err is the underlying cause.
	Err error
}

func (e *BlurEngineError) Error() string {
	return fmt.Sprintf("blurview: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *BlurEngineError) Unwrap() error { return e.Err }
