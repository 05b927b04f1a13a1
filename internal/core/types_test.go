package core

import (
	"errors"
	"testing"
)

func TestSurfacesFanOutAndJoinErrors(t *testing.T) {
	errA := errors.New("a failed")
	var seen []int
	s := Surfaces{
		SurfaceFunc(func(f Frame) error { seen = append(seen, f.Generation); return errA }),
		nil,
		SurfaceFunc(func(f Frame) error { seen = append(seen, f.Generation*10); return nil }),
	}
	err := s.Present(Frame{Generation: 3})
	if !errors.Is(err, errA) {
		t.Fatalf("expected joined error to wrap errA, got %v", err)
	}
	if len(seen) != 2 || seen[0] != 3 || seen[1] != 30 {
		t.Fatalf("every surface should see the frame in order, got %v", seen)
	}
	if err := (Surfaces{}).Present(Frame{}); err != nil {
		t.Fatalf("empty fan-out should not fail: %v", err)
	}
}
