//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"matrix-life/internal/core"
	"matrix-life/internal/life"
	"matrix-life/internal/render"
	"matrix-life/internal/ui"
)

// Game adapts a life engine to the ebiten.Game interface.
type Game struct {
	eng     *life.Engine
	painter *render.GridPainter
	overlay *ui.Overlay
	step    *core.FixedStep

	frame core.Frame
	buf   []uint8

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided engine. Generations advance at gps
// per second regardless of the display tick rate.
func New(eng *life.Engine, overlay life.Overlay, scale, gps int) *Game {
	size := eng.Size()
	g := &Game{
		eng:     eng,
		painter: render.NewGridPainter(size, scale),
		overlay: ui.NewOverlay(ui.NewLabel(overlay, nil), size, scale),
		step:    core.NewFixedStep(gps),
		scale:   scale,
	}
	g.frame, g.buf = buildFrame(eng, g.buf, false)
	return g
}

// Update handles input and advances the simulation when its step is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.eng.Reseed(); err != nil {
			return err
		}
		g.frame, g.buf = buildFrame(g.eng, g.buf, true)
		return nil
	}

	due := g.step.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.tickOnce = false
		_, reseeded, err := g.eng.Step()
		if err != nil {
			return err
		}
		g.frame, g.buf = buildFrame(g.eng, g.buf, reseeded)
	}
	return nil
}

// Draw renders the last committed generation and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.frame)
	g.overlay.Draw(screen, g.frame)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}
