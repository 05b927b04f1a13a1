//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"matrix-life/internal/core"
	"matrix-life/internal/render"
)

// Overlay draws the label on top of the grid.
type Overlay struct {
	label  *Label
	scale  int
	hidden bool
	canvas *ebiten.Image
}

// NewOverlay constructs an overlay for a grid drawn at scale pixels per cell.
func NewOverlay(label *Label, size core.Size, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{label: label, scale: scale, canvas: ebiten.NewImage(size.W, size.H)}
}

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() { o.hidden = !o.hidden }

// Draw renders the label for f onto screen. The text is laid out in grid
// coordinates and scaled with the grid.
func (o *Overlay) Draw(screen *ebiten.Image, f core.Frame) {
	if o == nil || o.hidden || o.label == nil {
		return
	}
	msg := o.label.Text(f)
	if msg == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, msg)
	x, y := Position(f.Size, bounds.Dx(), bounds.Dy())

	o.canvas.Clear()
	text.Draw(o.canvas, msg, face, x, y, render.RGB(LabelColor))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.canvas, op)
}
