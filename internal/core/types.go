package core

import "errors"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Frame is one committed generation handed to a Surface. Cells is only valid
// for the duration of Present and must not be retained.
type Frame struct {
	Size       Size
	Cells      []uint8
	Generation int
	Alive      int
	Epoch      int
	Reseeded   bool
	Foreground uint32
}

// Surface consumes committed frames, e.g. a window, a panel or a network stream.
type Surface interface {
	Present(f Frame) error
}

// Surfaces fans a frame out to every member in order.
type Surfaces []Surface

// Present hands f to each surface and joins their errors.
func (s Surfaces) Present(f Frame) error {
	var errs []error
	for _, surface := range s {
		if surface == nil {
			continue
		}
		if err := surface.Present(f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func(f Frame) error

// Present calls fn(f).
func (fn SurfaceFunc) Present(f Frame) error { return fn(f) }
