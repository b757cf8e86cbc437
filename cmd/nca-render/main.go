// Command nca-render runs the automaton headless and writes the final state
// as a PNG, useful for checking channel settings without a window.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"nca-lab/internal/app"
	"nca-lab/internal/render"
	"nca-lab/internal/sims/nca"
	"nca-lab/internal/store"
)

func main() {
	width := flag.Int("w", 256, "grid width in cells")
	height := flag.Int("h", 256, "grid height in cells")
	steps := flag.Int("steps", 100, "ticks to simulate")
	settingsPath := flag.String("settings", "settings.json", "path to the channel settings file")
	out := flag.String("out", "nca.png", "output PNG path")
	flag.Parse()

	cfg := nca.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height

	auto, err := nca.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := app.ApplySettings(auto.Params(), store.LoadSettings(*settingsPath)); err != nil {
		log.Printf("settings: %v", err)
	}

	for i := 0; i < *steps; i++ {
		auto.Step()
	}

	img := image.NewNRGBA(image.Rect(0, 0, *width, *height))
	render.FillCellRGBA(img.Pix, auto.Cells())

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s after %d steps", *out, *steps)
}
