// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package view

import "strconv"

// AttrBlurRadius is the attribute name that carries the initial radius.
const AttrBlurRadius = "blur_radius"

// Option configures an ImageView during creation.
//
// Example:
//
//	v, _ := view.New(surface, view.WithBlurRadius(8))
type Option func(*options)

// options holds optional configuration for ImageView creation.
type options struct {
	radius int
}

// defaultOptions returns the default options: blur disabled.
func defaultOptions() options {
	return options{radius: 0}
}

// WithBlurRadius sets the initial blur radius. 0 disables blurring;
// other values are clamped to [blurview.MinRadius, blurview.MaxRadius]
// when the blur runs.
func WithBlurRadius(radius int) Option {
	return func(o *options) {
		o.radius = radius
	}
}

// AttributeSet is a styling source for integer attributes, such as the
// parsed attributes of a widget declaration.
type AttributeSet interface {
	// Int returns the attribute value, or def if it is absent or malformed.
	Int(name string, def int) int
}

// WithAttributes reads the initial radius from the AttrBlurRadius
// attribute, defaulting to 0 (disabled).
func WithAttributes(attrs AttributeSet) Option {
	return func(o *options) {
		if attrs != nil {
			o.radius = attrs.Int(AttrBlurRadius, 0)
		}
	}
}

// Attributes is an AttributeSet backed by string values.
type Attributes map[string]string

// Int parses the named attribute as a base-10 integer.
func (a Attributes) Int(name string, def int) int {
	s, ok := a[name]
	if !ok {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
