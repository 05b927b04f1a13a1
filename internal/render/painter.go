//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"matrix-life/internal/core"
)

// GridPainter updates a single RGBA image from binary cell data.
type GridPainter struct {
	w, h  int
	scale int
	img   *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for a grid of the given size, drawn at
// scale screen pixels per cell.
func NewGridPainter(size core.Size, scale int) *GridPainter {
	if scale <= 0 {
		scale = 1
	}
	return &GridPainter{
		w:     size.W,
		h:     size.H,
		scale: scale,
		img:   ebiten.NewImage(size.W, size.H),
		buf:   make([]byte, 4*size.W*size.H),
	}
}

// Blit uploads the frame into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, f core.Frame) {
	if len(f.Cells) != gp.w*gp.h {
		return
	}
	FillRGBA(gp.buf, f.Cells, f.Foreground)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.scale), float64(gp.scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
