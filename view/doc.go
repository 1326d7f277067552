// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package view connects the blurview pipeline to a display surface.
//
// ImageView is the orchestration layer of a blurring image widget. The
// toolkit owns the widget lifecycle and painting; ImageView decides what
// to paint:
//
//	SetImage(d) -> Extract -> Blur -> Surface.Show(blurred)
//
// # Fallbacks
//
// A blur radius of 0 or a nil image bypasses the pipeline and shows the
// image unmodified. If extraction or blurring fails, the failure is logged
// through blurview.Logger() and the unmodified image is shown. Failures are
// never retried and never reach the surface.
//
// # Re-entrancy
//
// The blurred result is handed back through SetImage while the view is in
// StateBlurring, which passes it straight to the surface. Setting the
// view's current blurred output back onto it is also a pass-through, so a
// blurred image is never blurred again. SetBlur always re-runs the
// pipeline from the original source.
//
// # Usage
//
//	v, err := view.New(surface, view.WithBlurRadius(12))
//	if err != nil {
//	    return err
//	}
//	v.SetImage(blurview.NewBitmapDrawable(photo))
//	v.SetBlur(20) // live update
//
// # Thread Safety
//
// ImageView is NOT safe for concurrent use. Drive it from the UI thread,
// or run Blur on a worker yourself and call SetImage with the result.
package view
