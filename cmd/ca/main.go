//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"seating-ca/internal/app"
	"seating-ca/internal/core"
	_ "seating-ca/internal/sims/seating"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.New(cfg.Sim, cfg.SimOptions())
	if err != nil {
		log.Fatalf("create sim %q: %v", cfg.Sim, err)
	}
	if sim.Size().Empty() {
		log.Fatalf("sim %q has an empty layout; nothing to show", cfg.Sim)
	}

	game := app.New(sim, cfg)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("seating-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
