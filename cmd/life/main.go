//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"matrix-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	eng, preset, source, err := cfg.NewEngine()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s %dx%d, reseed every %d generations, %s", eng.Name(), eng.Size().W, eng.Size().H, eng.Config().ReseedThreshold, source)

	game := app.New(eng, preset.Overlay, cfg.Scale, cfg.GPS)
	size := eng.Size()

	ebiten.SetWindowTitle("matrix-life: " + cfg.Preset)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
