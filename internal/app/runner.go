package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"

	"matrix-life/internal/core"
	"matrix-life/internal/life"
)

// Runner drives an engine at a fixed generation rate and hands each committed
// generation to a surface. It owns the frame timing; the engine only steps.
type Runner struct {
	eng      *life.Engine
	surface  core.Surface
	interval time.Duration
	limit    int
	logger   *log.Logger
	buf      []uint8
}

// NewRunner constructs a Runner stepping once per interval. A nil logger uses
// log.Default().
func NewRunner(eng *life.Engine, surface core.Surface, interval time.Duration, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if interval <= 0 {
		interval = time.Second / 10
	}
	return &Runner{
		eng:      eng,
		surface:  surface,
		interval: interval,
		logger:   logger,
		buf:      make([]uint8, 0, eng.Size().Cells()),
	}
}

// SetLimit stops Run after n generations; zero runs until cancelled.
func (r *Runner) SetLimit(n int) { r.limit = n }

// Run presents the initial board and then steps until ctx is cancelled, the
// limit is reached, or a step or surface fails.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.present(false); err != nil {
		return err
	}
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	steps := 0
	for {
		select {
		case <-ctx.Done():
			r.logger.Printf("runner: stopped after %s generations", humanize.Comma(int64(steps)))
			return nil
		case <-ticker.C:
			if err := r.advance(); err != nil {
				return err
			}
			steps++
			if r.limit > 0 && steps >= r.limit {
				r.logger.Printf("runner: reached limit of %s generations", humanize.Comma(int64(steps)))
				return nil
			}
		}
	}
}

func (r *Runner) advance() error {
	_, reseeded, err := r.eng.Step()
	if err != nil {
		return fmt.Errorf("runner: step: %w", err)
	}
	if reseeded {
		r.logger.Printf("runner: reseeded epoch %d, %s cells alive, foreground #%06x",
			r.eng.Epoch(), humanize.Comma(int64(r.eng.Alive())), r.eng.Foreground())
	}
	return r.present(reseeded)
}

func (r *Runner) present(reseeded bool) error {
	var f core.Frame
	f, r.buf = buildFrame(r.eng, r.buf, reseeded)
	if err := r.surface.Present(f); err != nil {
		return fmt.Errorf("runner: present: %w", err)
	}
	return nil
}

// buildFrame snapshots the committed generation into buf.
func buildFrame(e *life.Engine, buf []uint8, reseeded bool) (core.Frame, []uint8) {
	buf = e.Snapshot(buf)
	return core.Frame{
		Size:       e.Size(),
		Cells:      buf,
		Generation: e.Generation(),
		Alive:      e.Alive(),
		Epoch:      e.Epoch(),
		Reseeded:   reseeded,
		Foreground: e.Foreground(),
	}, buf
}
