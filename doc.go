// Package blurview provides the image pipeline behind a blurring image view.
//
// # Overview
//
// blurview turns any drawable image description into a fixed-format RGBA8
// pixel buffer, then blurs it at reduced resolution so the display layer
// can upscale the result cheaply. It is a Pure Go package with no GPU or
// toolkit dependency; the view integration lives in the view subpackage.
//
// # Quick Start
//
//	import "github.com/gogpu/blurview"
//
//	img := blurview.NewBitmapDrawable(photo) // any image.Image
//
//	src, err := blurview.Extract(img)
//	if err != nil {
//	    // show photo unmodified
//	}
//	blurred, err := blurview.Blur(src, 10) // half-size, radius 10
//	if err != nil {
//	    // show photo unmodified
//	}
//
// # Pipeline
//
// The pipeline has two stages:
//   - Extract: Drawable -> *Pixmap (fast path for pre-decoded bitmaps,
//     1x1 fallback for drawables without an intrinsic size)
//   - Blur: ClampRadius -> Downscale(src, DefaultScale) -> ApplyBlur
//
// ApplyBlur is a separable three-pass box blur approximating a Gaussian.
// Every stage allocates its output; inputs are never mutated.
//
// # Errors
//
// Extraction failures are reported as *ExtractionError and blur failures
// as *BlurEngineError. Both unwrap to the package sentinel errors.
//
// # Logging
//
// The package is silent by default. Call SetLogger to route diagnostics
// into a log/slog logger.
package blurview
