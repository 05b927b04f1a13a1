package core

import (
	"bytes"
	"errors"
	"slices"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	a := make([]uint8, 500)
	b := make([]uint8, 500)
	if err := NewRNG(42).FillBinary(a); err != nil {
		t.Fatal(err)
	}
	if err := NewRNG(42).FillBinary(b); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a, b) {
		t.Fatal("same seed should produce the same cells")
	}
	c := make([]uint8, 500)
	_ = NewRNG(43).FillBinary(c)
	if slices.Equal(a, c) {
		t.Fatal("different seeds should produce different cells")
	}
}

func TestRNGFillBinaryBalanced(t *testing.T) {
	buf := make([]uint8, 4096)
	_ = NewRNG(7).FillBinary(buf)
	alive := 0
	for _, c := range buf {
		alive += int(c)
	}
	// Mean 2048, standard deviation 32.
	if alive < 2048-200 || alive > 2048+200 {
		t.Fatalf("live count %d far from a 50/50 split", alive)
	}
}

func TestRNGUint32n(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		v, err := r.Uint32n(10)
		if err != nil {
			t.Fatal(err)
		}
		if v >= 10 {
			t.Fatalf("value %d out of range", v)
		}
	}
	if v, _ := r.Uint32n(0); v != 0 {
		t.Fatalf("Uint32n(0) = %d, want 0", v)
	}
}

func TestReaderSourceSpreadsBits(t *testing.T) {
	src := NewReaderSource(bytes.NewReader([]byte{0b10100101, 0b00000001}))
	buf := make([]uint8, 9)
	if err := src.FillBinary(buf); err != nil {
		t.Fatal(err)
	}
	want := []uint8{1, 0, 1, 0, 0, 1, 0, 1, 1}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}
}

func TestReaderSourceExhausted(t *testing.T) {
	src := NewReaderSource(bytes.NewReader([]byte{1, 2}))
	if _, err := src.Uint32n(5); !errors.Is(err, ErrSourceExhausted) {
		t.Fatalf("expected ErrSourceExhausted, got %v", err)
	}
	if err := src.FillBinary(make([]uint8, 64)); !errors.Is(err, ErrSourceExhausted) {
		t.Fatalf("expected ErrSourceExhausted, got %v", err)
	}
}

func TestReaderSourceUint32n(t *testing.T) {
	src := NewReaderSource(bytes.NewReader([]byte{0, 0, 1, 4}))
	v, err := src.Uint32n(256)
	if err != nil {
		t.Fatal(err)
	}
	if v != 4 {
		t.Fatalf("got %d, want 4", v)
	}
}
