package core

// Grid stores two byte-per-cell buffers in row-major order. Cur holds the
// committed generation; Nxt is scratch space rewritten in full every step.
type Grid struct {
	W, H int
	cur  []uint8
	nxt  []uint8
}

// NewGrid allocates both buffers for a w*h grid. Callers validate dimensions.
func NewGrid(w, h int) *Grid {
	total := w * h
	return &Grid{W: w, H: h, cur: make([]uint8, total), nxt: make([]uint8, total)}
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cur) }

// Cur exposes the committed buffer.
func (g *Grid) Cur() []uint8 { return g.cur }

// Nxt exposes the scratch buffer.
func (g *Grid) Nxt() []uint8 { return g.nxt }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At reads the committed value at (x, y), wrapping out-of-range coordinates.
func (g *Grid) At(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.cur[g.Index(x, y)]
}

// Set writes v into the committed buffer at (x, y).
func (g *Grid) Set(x, y int, v uint8) {
	x, y = g.Wrap(x, y)
	g.cur[g.Index(x, y)] = v
}

// Commit publishes the scratch buffer as the current generation. The buffers
// are swapped, so the old generation becomes the next scratch space.
func (g *Grid) Commit() {
	g.cur, g.nxt = g.nxt, g.cur
}

// Randomize fills the scratch buffer from src and commits it. On error the
// committed generation is left untouched.
func (g *Grid) Randomize(src Source) error {
	if err := src.FillBinary(g.nxt); err != nil {
		return err
	}
	g.Commit()
	return nil
}

// Clear fills both buffers with zeros.
func (g *Grid) Clear() {
	clear(g.cur)
	clear(g.nxt)
}
