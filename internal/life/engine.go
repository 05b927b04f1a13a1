package life

import (
	"errors"
	"fmt"

	"matrix-life/internal/core"
)

const (
	// DefaultForeground is the live-cell color before the first reseed.
	DefaultForeground uint32 = 0x0000FF
	// maxForeground bounds the colors picked on reseed to [1, maxForeground].
	maxForeground uint32 = 262142
)

var (
	// ErrPatternSize reports a Load buffer whose length differs from the grid.
	ErrPatternSize = errors.New("life: pattern size mismatch")
	// ErrCellValue reports a cell value other than 0 or 1.
	ErrCellValue = errors.New("life: cell value out of range")
)

// Engine runs Conway's Game of Life on a toroidal grid. It is not safe for
// concurrent use; a single loop owns it.
type Engine struct {
	cfg    Config
	topo   *Topology
	grid   *core.Grid
	src    core.Source
	policy ReseedPolicy
	bands  []band

	generation int
	alive      int
	epoch      int
	fg         uint32
}

// New builds the neighbor table, allocates both buffers and seeds the grid
// from src.
func New(cfg Config, src core.Source) (*Engine, error) {
	topo, err := BuildTopology(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:    cfg,
		topo:   topo,
		grid:   core.NewGrid(cfg.Width, cfg.Height),
		src:    src,
		policy: ReseedPolicy{Threshold: cfg.ReseedThreshold},
		bands:  splitBands(cfg.Width, cfg.Height, cfg.Workers),
		fg:     DefaultForeground,
	}
	if err := e.grid.Randomize(src); err != nil {
		return nil, fmt.Errorf("life: initial seed: %w", err)
	}
	e.alive = countAlive(e.grid.Cur())
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.cfg.Width, H: e.cfg.Height} }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Generation returns the number of ticks since the last reseed.
func (e *Engine) Generation() int { return e.generation }

// Alive returns the live-cell count of the committed generation.
func (e *Engine) Alive() int { return e.alive }

// Epoch returns the number of reseeds since the engine was created.
func (e *Engine) Epoch() int { return e.epoch }

// Foreground returns the current live-cell color as 0xRRGGBB.
func (e *Engine) Foreground() uint32 { return e.fg }

// Tick advances one generation and returns its live-cell count. Every read
// during the tick sees the previous generation; the new one is committed only
// after all cells are written.
func (e *Engine) Tick() int {
	var alive int
	if len(e.bands) > 1 {
		alive = e.tickBands()
	} else {
		alive = e.tickRange(0, e.grid.Len())
	}
	e.grid.Commit()
	e.generation++
	e.alive = alive
	return alive
}

// tickRange writes next-generation values for cells [lo, hi) and returns how
// many of them are alive.
func (e *Engine) tickRange(lo, hi int) int {
	cur, nxt, idx := e.grid.Cur(), e.grid.Nxt(), e.topo.idx
	alive := 0
	for i := lo; i < hi; i++ {
		n := idx[i*8 : i*8+8 : i*8+8]
		sum := cur[n[0]] + cur[n[1]] + cur[n[2]] + cur[n[3]] +
			cur[n[4]] + cur[n[5]] + cur[n[6]] + cur[n[7]]
		var v uint8
		if sum == 3 || (sum == 2 && cur[i] == 1) {
			v = 1
		}
		nxt[i] = v
		alive += int(v)
	}
	return alive
}

// Step runs Tick and then the reseed policy. When the policy fires the grid is
// replaced with random cells and reseeded is true.
func (e *Engine) Step() (alive int, reseeded bool, err error) {
	alive = e.Tick()
	if !e.policy.Due(e.generation) {
		return alive, false, nil
	}
	if err := e.Reseed(); err != nil {
		return alive, false, err
	}
	return e.alive, true, nil
}

// Reseed randomizes the grid, resets the generation counter and, when color
// cycling is enabled, picks a new foreground color. On error nothing changes.
func (e *Engine) Reseed() error {
	fg := e.fg
	if e.cfg.CycleColor {
		c, err := e.src.Uint32n(maxForeground)
		if err != nil {
			return fmt.Errorf("life: reseed color: %w", err)
		}
		fg = c + 1
	}
	if err := e.grid.Randomize(e.src); err != nil {
		return fmt.Errorf("life: reseed: %w", err)
	}
	e.fg = fg
	e.generation = 0
	e.epoch++
	e.alive = countAlive(e.grid.Cur())
	return nil
}

// Snapshot copies the committed generation into dst, reusing its capacity,
// and returns the result in row-major order.
func (e *Engine) Snapshot(dst []uint8) []uint8 {
	return append(dst[:0], e.grid.Cur()...)
}

// Load replaces the committed generation with cells and resets the
// generation counter.
func (e *Engine) Load(cells []uint8) error {
	if len(cells) != e.grid.Len() {
		return fmt.Errorf("%w: got %d cells, want %d", ErrPatternSize, len(cells), e.grid.Len())
	}
	for i, c := range cells {
		if c > 1 {
			return fmt.Errorf("%w: cell %d is %d", ErrCellValue, i, c)
		}
	}
	copy(e.grid.Cur(), cells)
	e.generation = 0
	e.alive = countAlive(cells)
	return nil
}

// Clear kills every cell.
func (e *Engine) Clear() {
	e.grid.Clear()
	e.generation = 0
	e.alive = 0
}

// At reports whether the cell at (x, y) is alive. Coordinates wrap.
func (e *Engine) At(x, y int) bool { return e.grid.At(x, y) == 1 }

// Set changes the cell at (x, y). Coordinates wrap.
func (e *Engine) Set(x, y int, alive bool) {
	var v uint8
	if alive {
		v = 1
	}
	if e.grid.At(x, y) != v {
		e.alive += int(v)*2 - 1
	}
	e.grid.Set(x, y, v)
}

func countAlive(cells []uint8) int {
	n := 0
	for _, c := range cells {
		n += int(c)
	}
	return n
}
