package life

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// band is a contiguous run of whole rows processed by one goroutine.
type band struct {
	lo, hi int
	alive  int
}

// splitBands divides h rows into at most workers bands. Fewer than two bands
// means the tick stays on the caller's goroutine.
func splitBands(w, h, workers int) []band {
	if workers > h {
		workers = h
	}
	if workers < 2 {
		return nil
	}
	rows := (h + workers - 1) / workers
	bands := make([]band, 0, workers)
	for y := 0; y < h; y += rows {
		end := min(y+rows, h)
		bands = append(bands, band{lo: y * w, hi: end * w})
	}
	return bands
}

// runBands calls work for every band concurrently and waits for all of them.
// A panic inside work is returned as an error naming the band.
func runBands(bands []band, work func(lo, hi int) int) (int, error) {
	var g errgroup.Group
	for i := range bands {
		b := &bands[i]
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("life: band [%d, %d): %v", b.lo, b.hi, r)
				}
			}()
			b.alive = work(b.lo, b.hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	total := 0
	for _, b := range bands {
		total += b.alive
	}
	return total, nil
}

// tickBands computes every band concurrently. The caller commits only after
// all bands have joined; a band fault is raised on the caller's goroutine.
func (e *Engine) tickBands() int {
	alive, err := runBands(e.bands, e.tickRange)
	if err != nil {
		panic(err)
	}
	return alive
}
