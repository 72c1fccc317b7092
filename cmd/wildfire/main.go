//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"wildfire/internal/app"
	"wildfire/internal/core"
	"wildfire/internal/scenario"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := loadSim(cfg)
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("wildfire - " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func loadSim(cfg *app.Config) (core.Sim, error) {
	overrides := cfg.Set.Map()
	if cfg.Scenario != "" {
		sc, err := scenario.Load(cfg.Scenario)
		if err != nil {
			return nil, err
		}
		return scenario.NewSimulation(sc, overrides)
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.SimNames())
	}
	return factory(overrides)
}
