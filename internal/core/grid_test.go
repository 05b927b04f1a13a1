package core

import (
	"bytes"
	"errors"
	"slices"
	"testing"
)

func TestGridWrapAndAccessors(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Len() != 12 {
		t.Fatalf("expected 12 cells, got %d", g.Len())
	}
	g.Set(-1, -1, 1)
	if g.Cur()[g.Index(3, 2)] != 1 {
		t.Fatal("Set(-1,-1) should wrap to (3,2)")
	}
	if g.At(7, 5) != 1 {
		t.Fatal("At(7,5) should wrap to (3,2)")
	}
	x, y := g.Wrap(4, -4)
	if x != 0 || y != 2 {
		t.Fatalf("Wrap(4,-4) = (%d,%d), want (0,2)", x, y)
	}
}

func TestGridCommitSwapsBuffers(t *testing.T) {
	g := NewGrid(2, 2)
	copy(g.Nxt(), []uint8{1, 0, 1, 1})
	g.Commit()
	if !slices.Equal(g.Cur(), []uint8{1, 0, 1, 1}) {
		t.Fatalf("committed buffer = %v", g.Cur())
	}
	if !slices.Equal(g.Nxt(), []uint8{0, 0, 0, 0}) {
		t.Fatalf("scratch buffer should hold the previous generation, got %v", g.Nxt())
	}
}

func TestGridRandomizeFailureLeavesCurrent(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(1, 1, 1)
	before := append([]uint8(nil), g.Cur()...)

	src := NewReaderSource(bytes.NewReader(nil))
	err := g.Randomize(src)
	if !errors.Is(err, ErrSourceExhausted) {
		t.Fatalf("expected ErrSourceExhausted, got %v", err)
	}
	if !slices.Equal(before, g.Cur()) {
		t.Fatal("failed randomize must not touch the committed generation")
	}
}

func TestGridRandomizeCommits(t *testing.T) {
	g := NewGrid(8, 8)
	if err := g.Randomize(NewRNG(3)); err != nil {
		t.Fatalf("randomize: %v", err)
	}
	alive := 0
	for _, c := range g.Cur() {
		if c > 1 {
			t.Fatalf("cell value %d out of range", c)
		}
		alive += int(c)
	}
	if alive == 0 || alive == g.Len() {
		t.Fatalf("implausible live count %d for a random 8x8 grid", alive)
	}
}
