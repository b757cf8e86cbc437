//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"nca-lab/internal/app"
	"nca-lab/internal/sims/nca"
	"nca-lab/internal/store"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg := nca.DefaultConfig()
	simCfg.Width = cfg.Width
	simCfg.Height = cfg.Height

	auto, err := nca.New(simCfg)
	if err != nil {
		log.Fatal(err)
	}

	settings := store.LoadSettings(cfg.Settings)
	if err := app.ApplySettings(auto.Params(), settings); err != nil {
		log.Printf("settings: %v", err)
	}
	presets := store.LoadPresets(cfg.Presets)

	game := app.New(auto, cfg, settings, presets)

	ebiten.SetWindowTitle("nca-lab")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
