// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package view

import (
	"errors"

	"github.com/gogpu/blurview"
)

// ErrNilSurface is returned when New is called with a nil Surface.
var ErrNilSurface = errors.New("view: nil surface")

// Surface paints whatever the view decides to show.
//
// Show receives either the original drawable (blur disabled or failed) or
// a *blurview.BitmapDrawable holding the downscaled blurred pixmap, which
// the surface stretches to its own bounds. d may be nil (clear the view).
type Surface interface {
	Show(d blurview.Drawable)
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func(d blurview.Drawable)

// Show calls f(d).
func (f SurfaceFunc) Show(d blurview.Drawable) { f(d) }

// ImageView shows an image, optionally blurred.
//
// ImageView is NOT safe for concurrent use.
type ImageView struct {
	surface Surface
	radius  int
	state   State

	source    blurview.Drawable // last image set by the caller
	displayed blurview.Drawable // last image handed to the surface
	blurred   blurview.Drawable // our own blurred output, if displayed
}

// New creates an ImageView that paints onto surface.
func New(surface Surface, opts ...Option) (*ImageView, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &ImageView{
		surface: surface,
		radius:  o.radius,
		state:   StateIdle,
	}, nil
}

// BlurRadius returns the configured radius (0 = disabled), unclamped.
func (v *ImageView) BlurRadius() int {
	return v.radius
}

// Source returns the last image set by the caller.
func (v *ImageView) Source() blurview.Drawable {
	return v.source
}

// Displayed returns the drawable last handed to the surface.
func (v *ImageView) Displayed() blurview.Drawable {
	return v.displayed
}

// State returns the current re-entrancy state.
func (v *ImageView) State() State {
	return v.state
}

// SetImage sets the image to display.
//
// With a radius of 0 or a nil image, d is shown unmodified. Otherwise d
// is extracted and blurred and the result shown; if either step fails d
// is shown unmodified. Passing the view's own blurred output shows it as
// is without blurring it again.
func (v *ImageView) SetImage(d blurview.Drawable) {
	if v.state == StateBlurring {
		v.show(d)
		return
	}
	if d != nil && d == v.blurred {
		v.show(d)
		return
	}

	v.source = d
	v.blurred = nil

	if v.radius == 0 || d == nil {
		v.show(d)
		return
	}

	out, err := blurDrawable(d, v.radius)
	if err != nil {
		blurview.Logger().Warn("blur failed, showing original image", "radius", v.radius, "error", err)
		v.show(d)
		return
	}

	result := blurview.NewBitmapDrawable(out)
	v.blurred = result

	v.state = StateBlurring
	defer func() { v.state = StateIdle }()
	v.SetImage(result)
}

// SetBlur changes the radius and, if an image is set, re-runs the pipeline
// from the original source.
func (v *ImageView) SetBlur(radius int) {
	v.radius = radius
	if v.source != nil {
		v.SetImage(v.source)
	}
}

// show hands d to the surface.
func (v *ImageView) show(d blurview.Drawable) {
	v.displayed = d
	v.surface.Show(d)
}

// blurDrawable runs extract -> blur.
func blurDrawable(d blurview.Drawable, radius int) (*blurview.Pixmap, error) {
	src, err := blurview.Extract(d)
	if err != nil {
		return nil, err
	}
	return blurview.Blur(src, radius)
}
