// Package filter provides the raw blur kernel behind blurview.ApplyBlur.
//
// The kernel works on tightly packed RGBA8 byte slices so it has no
// dependency on the public Pixmap type:
//   - Separable box blur with edge clamping, O(1) per pixel per pass
//     regardless of radius (running sums)
//   - Three successive box passes approximating a Gaussian
//
// Channels are filtered independently; alpha is not premultiplied.
//
// Performance targets (540p, the downscaled size of a 1080p source):
//   - Blur (r=5): <5ms
//   - Blur (r=25): <5ms
package filter
