package ui

import (
	"fmt"
	"time"

	"matrix-life/internal/core"
	"matrix-life/internal/life"
)

// LabelColor is the overlay text color.
const LabelColor uint32 = 0x666600

// clockPeriod is how long the clock label shows the time before switching to
// the date and back.
const clockPeriod = 4 * time.Second

// Label produces the overlay text for each frame.
type Label struct {
	mode     life.Overlay
	now      func() time.Time
	showDate bool
	switched time.Time
}

// NewLabel returns a label in the given mode. now stands in for the real-time
// clock; nil uses time.Now.
func NewLabel(mode life.Overlay, now func() time.Time) *Label {
	if now == nil {
		now = time.Now
	}
	return &Label{mode: mode, now: now}
}

// Text returns the string to draw for f, or "" when nothing should be drawn.
func (l *Label) Text(f core.Frame) string {
	switch l.mode {
	case life.OverlayClock:
		return l.clockText()
	case life.OverlayStats:
		return fmt.Sprintf("%d-%d", f.Generation, f.Alive)
	default:
		return ""
	}
}

func (l *Label) clockText() string {
	now := l.now()
	if l.switched.IsZero() {
		l.switched = now
	}
	if now.Sub(l.switched) >= clockPeriod {
		l.showDate = !l.showDate
		l.switched = now
	}
	if l.showDate {
		return now.Format("2006/01/02")
	}
	return now.Format("15:04:05")
}

// Position centers a textW*textH label horizontally and places its baseline
// slightly below the vertical middle of the grid.
func Position(size core.Size, textW, textH int) (x, y int) {
	x = (size.W - textW) / 2
	y = size.H/2 - textH/2 + 6
	return x, y
}
