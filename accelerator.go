package blurview

import (
	"errors"
	"sync"
)

// ErrFallbackToCPU indicates the accelerator cannot handle this blur.
// ApplyBlur transparently falls back to the software kernel.
var ErrFallbackToCPU = errors.New("blurview: falling back to CPU blur")

// BlurAccelerator is an optional platform blur provider (GPU, SIMD).
//
// When registered via RegisterAccelerator, ApplyBlur tries the accelerator
// first. If it returns ErrFallbackToCPU or any other error, the software
// box blur runs instead. Any implementation must keep the contract of the
// software kernel: dst has the dimensions of src and src is not modified.
type BlurAccelerator interface {
	// Name returns the accelerator name (e.g., "wgpu", "neon").
	Name() string

	// Init initializes resources. Called once during registration.
	Init() error

	// Close releases resources.
	Close()

	// Blur writes a blurred copy of src into dst.
	// radius is already clamped to [MinRadius, MaxRadius].
	Blur(dst, src *Pixmap, radius int) error
}

var (
	accelMu sync.RWMutex
	accel   BlurAccelerator
)

// RegisterAccelerator registers a blur accelerator.
//
// Only one accelerator can be registered. Subsequent calls replace the previous one.
// The accelerator's Init() method is called during registration.
// If Init() fails, the accelerator is not registered and the error is returned.
func RegisterAccelerator(a BlurAccelerator) error {
	if a == nil {
		return errors.New("blurview: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}

	propagateLogger(a, Logger())
	Logger().Info("blur accelerator registered", "name", a.Name())
	return nil
}

// UnregisterAccelerator removes and closes the registered accelerator, if any.
func UnregisterAccelerator() {
	accelMu.Lock()
	old := accel
	accel = nil
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
}

// Accelerator returns the currently registered accelerator, or nil if none.
func Accelerator() BlurAccelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}
