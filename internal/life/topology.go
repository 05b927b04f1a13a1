package life

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions reports a grid width or height that is not positive.
var ErrInvalidDimensions = errors.New("life: invalid dimensions")

// directions lists the Moore neighborhood as (dx, dy) offsets. Every cell's
// neighbors are stored in this order.
var directions = [8][2]int{
	{-1, -1},
	{-1, 0},
	{-1, 1},
	{0, -1},
	{0, 1},
	{1, -1},
	{1, 0},
	{1, 1},
}

// Topology holds the eight wrapped neighbor indices of every cell, flattened
// so the neighbors of cell i live at [i*8, i*8+8).
type Topology struct {
	w, h int
	idx  []int32
}

// BuildTopology precomputes toroidal neighbor indices for a w*h grid.
func BuildTopology(w, h int) (*Topology, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	idx := make([]int32, w*h*8)
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for _, d := range directions {
				nx := (x + d[0] + w) % w
				ny := (y + d[1] + h) % h
				idx[i] = int32(ny*w + nx)
				i++
			}
		}
	}
	return &Topology{w: w, h: h, idx: idx}, nil
}

// Neighbors returns the neighbor indices of cell i. The slice aliases the
// table and must not be modified.
func (t *Topology) Neighbors(i int) []int32 {
	base := i * 8
	return t.idx[base : base+8 : base+8]
}

// Len returns the number of cells the table covers.
func (t *Topology) Len() int { return t.w * t.h }
