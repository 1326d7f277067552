// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package view

// State is the re-entrancy state of an ImageView.
type State uint8

const (
	// StateIdle is the resting state; SetImage runs the pipeline.
	StateIdle State = iota

	// StateBlurring means the view is handing its own blurred result to the
	// surface; SetImage passes images straight through.
	StateBlurring
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateBlurring:
		return "Blurring"
	default:
		return "Unknown"
	}
}
