package ui

import (
	"testing"
	"time"

	"matrix-life/internal/core"
	"matrix-life/internal/life"
)

func TestClockLabelAlternates(t *testing.T) {
	now := time.Date(2025, 2, 6, 8, 23, 5, 0, time.UTC)
	l := NewLabel(life.OverlayClock, func() time.Time { return now })

	if got := l.Text(core.Frame{}); got != "08:23:05" {
		t.Fatalf("first label = %q, want time", got)
	}
	now = now.Add(3 * time.Second)
	if got := l.Text(core.Frame{}); got != "08:23:08" {
		t.Fatalf("label after 3s = %q, want time", got)
	}
	now = now.Add(time.Second)
	if got := l.Text(core.Frame{}); got != "2025/02/06" {
		t.Fatalf("label after 4s = %q, want date", got)
	}
	now = now.Add(4 * time.Second)
	if got := l.Text(core.Frame{}); got != "08:23:13" {
		t.Fatalf("label after 8s = %q, want time again", got)
	}
}

func TestStatsAndNoneLabels(t *testing.T) {
	stats := NewLabel(life.OverlayStats, nil)
	if got := stats.Text(core.Frame{Generation: 12, Alive: 345}); got != "12-345" {
		t.Fatalf("stats label = %q", got)
	}
	none := NewLabel(life.OverlayNone, nil)
	if got := none.Text(core.Frame{Generation: 1}); got != "" {
		t.Fatalf("none label = %q", got)
	}
}

func TestPosition(t *testing.T) {
	x, y := Position(core.Size{W: 64, H: 64}, 48, 8)
	if x != 8 || y != 34 {
		t.Fatalf("Position = (%d,%d), want (8,34)", x, y)
	}
}
