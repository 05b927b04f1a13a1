package life

import (
	"errors"
	"slices"
	"testing"

	"matrix-life/internal/core"
)

// flakySource wraps an RNG and fails every call while fail is set.
type flakySource struct {
	inner *core.RNG
	fail  bool
}

func (s *flakySource) FillBinary(buf []uint8) error {
	if s.fail {
		return core.ErrSourceExhausted
	}
	return s.inner.FillBinary(buf)
}

func (s *flakySource) Uint32n(n uint32) (uint32, error) {
	if s.fail {
		return 0, core.ErrSourceExhausted
	}
	return s.inner.Uint32n(n)
}

func TestReseedPolicyDue(t *testing.T) {
	p := ReseedPolicy{Threshold: 3}
	for gen, want := range []bool{false, false, false, true, true} {
		if got := p.Due(gen); got != want {
			t.Fatalf("Due(%d) = %v, want %v", gen, got, want)
		}
	}
	if (ReseedPolicy{}).Due(1_000_000) {
		t.Fatal("zero threshold must never trigger")
	}
}

func blockEngine(t *testing.T, threshold int, src core.Source) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 32, 32
	cfg.ReseedThreshold = threshold
	e, err := New(cfg, src)
	if err != nil {
		t.Fatal(err)
	}
	e.Clear()
	for _, c := range [][2]int{{10, 10}, {11, 10}, {10, 11}, {11, 11}} {
		e.Set(c[0], c[1], true)
	}
	return e
}

func TestStepReseedsAtThreshold(t *testing.T) {
	const threshold = 5
	e := blockEngine(t, threshold, core.NewRNG(8))
	block := e.Snapshot(nil)

	for i := 1; i < threshold; i++ {
		_, reseeded, err := e.Step()
		if err != nil || reseeded {
			t.Fatalf("step %d: reseeded=%v err=%v", i, reseeded, err)
		}
		if e.Generation() != i {
			t.Fatalf("generation = %d, want %d", e.Generation(), i)
		}
	}

	alive, reseeded, err := e.Step()
	if err != nil {
		t.Fatal(err)
	}
	if !reseeded {
		t.Fatal("expected a reseed at the threshold")
	}
	if e.Generation() != 0 || e.Epoch() != 1 {
		t.Fatalf("generation=%d epoch=%d, want 0 and 1", e.Generation(), e.Epoch())
	}
	if slices.Equal(block, e.Snapshot(nil)) {
		t.Fatal("reseed should replace the still life")
	}
	// 1024 cells: mean 512, standard deviation 16.
	if alive < 400 || alive > 624 || alive != e.Alive() {
		t.Fatalf("alive after reseed = %d (engine %d), not a 50/50 fill", alive, e.Alive())
	}

	_, reseeded, err = e.Step()
	if err != nil || reseeded {
		t.Fatalf("policy must fire once per crossing: reseeded=%v err=%v", reseeded, err)
	}
	if e.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", e.Generation())
	}
}

func TestReseedCyclesForeground(t *testing.T) {
	e := blockEngine(t, 0, core.NewRNG(4))
	if e.Foreground() != DefaultForeground {
		t.Fatalf("foreground = %#x before any reseed", e.Foreground())
	}
	seen := map[uint32]bool{}
	for i := 0; i < 20; i++ {
		if err := e.Reseed(); err != nil {
			t.Fatal(err)
		}
		fg := e.Foreground()
		if fg < 1 || fg > maxForeground {
			t.Fatalf("foreground %d outside [1, %d]", fg, maxForeground)
		}
		seen[fg] = true
	}
	if len(seen) < 2 {
		t.Fatal("foreground should change across reseeds")
	}
	if e.Epoch() != 20 {
		t.Fatalf("epoch = %d, want 20", e.Epoch())
	}
}

func TestReseedWithoutColorCycling(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CycleColor = false
	e, err := New(cfg, core.NewRNG(4))
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Reseed(); err != nil {
		t.Fatal(err)
	}
	if e.Foreground() != DefaultForeground {
		t.Fatalf("foreground changed to %#x with cycling disabled", e.Foreground())
	}
}

func TestReseedFailureLeavesStateAndRetries(t *testing.T) {
	src := &flakySource{inner: core.NewRNG(6)}
	e := blockEngine(t, 2, src)
	e.Step()
	before := e.Snapshot(nil)

	src.fail = true
	_, reseeded, err := e.Step()
	if !errors.Is(err, core.ErrSourceExhausted) {
		t.Fatalf("expected ErrSourceExhausted, got %v", err)
	}
	if reseeded {
		t.Fatal("a failed reseed must not report success")
	}
	if !slices.Equal(before, e.Snapshot(nil)) {
		t.Fatal("a failed reseed must leave the still life in place")
	}
	if e.Generation() != 2 || e.Epoch() != 0 || e.Foreground() != DefaultForeground {
		t.Fatalf("state changed on failure: gen=%d epoch=%d fg=%#x", e.Generation(), e.Epoch(), e.Foreground())
	}

	src.fail = false
	_, reseeded, err = e.Step()
	if err != nil || !reseeded {
		t.Fatalf("policy should retry once the source recovers: reseeded=%v err=%v", reseeded, err)
	}
}
