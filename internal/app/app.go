//go:build ebiten

package app

import (
	"log"

	"nca-lab/internal/activation"
	"nca-lab/internal/core"
	"nca-lab/internal/render"
	"nca-lab/internal/sims/nca"
	"nca-lab/internal/store"
	"nca-lab/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var palette = []struct {
	name string
	rgb  core.RGB
}{
	{"white", core.RGB{R: 1, G: 1, B: 1}},
	{"red", core.RGB{R: 1}},
	{"green", core.RGB{G: 1}},
	{"blue", core.RGB{B: 1}},
	{"black", core.RGB{}},
}

// Game adapts the automaton to the ebiten.Game interface: fixed-step
// simulation pacing decoupled from the draw loop, mouse strokes fed to the
// brush, and keyboard control over brush, pacing and settings.
type Game struct {
	auto    *nca.Automaton
	cfg     *Config
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep

	settings store.Settings
	presets  store.Presets
	filterAt int
	actAt    int

	scale    int
	paused   bool
	tickOnce bool

	brushRadius float64
	brushShape  nca.Shape
	colorAt     int

	drawing bool
	prev    core.Point
}

// New constructs a Game for the provided automaton.
func New(auto *nca.Automaton, cfg *Config, settings store.Settings, presets store.Presets) *Game {
	size := auto.Size()
	return &Game{
		auto:        auto,
		cfg:         cfg,
		painter:     render.NewGridPainter(size.W, size.H),
		hud:         ui.NewHUD(),
		pacer:       core.NewFixedStep(cfg.TPS),
		settings:    settings,
		presets:     presets,
		scale:       cfg.Scale,
		brushRadius: 5,
	}
}

// Update handles per-frame input and advances the simulation.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.auto.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	g.updateBrushKeys()
	g.updatePacingKeys()
	g.updateSettingsKeys()
	g.updateStroke()

	due := g.pacer.ShouldStep()
	if g.tickOnce {
		g.auto.Step()
		g.tickOnce = false
	} else if !g.paused && due {
		g.auto.Step()
	}
	return nil
}

func (g *Game) updateBrushKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if g.brushShape == nca.ShapeCircle {
			g.brushShape = nca.ShapeSquare
		} else {
			g.brushShape = nca.ShapeCircle
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.colorAt = (g.colorAt + 1) % len(palette)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.brushRadius > 0 {
		g.brushRadius--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.brushRadius++
	}
}

func (g *Game) updatePacingKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) && g.pacer.TPS() > 1 {
		g.pacer.SetTPS(g.pacer.TPS() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) && g.pacer.TPS() < 240 {
		g.pacer.SetTPS(g.pacer.TPS() + 1)
	}
}

func (g *Game) updateSettingsKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) && len(g.presets.Filters) > 0 {
		preset := g.presets.Filters[g.filterAt%len(g.presets.Filters)]
		g.filterAt++
		f := nca.FilterFromCoeffs(preset.Coeffs)
		for ch := 0; ch < 3; ch++ {
			if err := g.auto.Params().SetFilter(ch, f); err != nil {
				log.Printf("filter preset %q: %v", preset.Name, err)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) && len(g.presets.Activations) > 0 {
		preset := g.presets.Activations[g.actAt%len(g.presets.Activations)]
		g.actAt++
		fn, err := activation.Compile(preset.Source)
		if err != nil {
			log.Printf("activation preset %q: %v", preset.Name, err)
		} else {
			for ch := 0; ch < 3; ch++ {
				if err := g.auto.Params().SetActivation(ch, fn); err != nil {
					log.Printf("activation preset %q: %v", preset.Name, err)
				}
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.settings = store.LoadSettings(g.cfg.Settings)
		if err := ApplySettings(g.auto.Params(), g.settings); err != nil {
			log.Printf("reload settings: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF6) {
		if err := store.SaveSettings(g.cfg.Settings, g.settings); err != nil {
			log.Printf("save settings: %v", err)
		}
	}
}

// updateStroke turns consecutive cursor samples while the left button is held
// into brush strokes. Releasing mid-stroke just stops emitting segments; the
// cells already painted stay.
func (g *Game) updateStroke() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.drawing = false
		return
	}
	cx, cy := ebiten.CursorPosition()
	pos := core.Point{X: float64(cx) / float64(g.scale), Y: float64(cy) / float64(g.scale)}
	if !g.drawing {
		g.prev = pos
		g.drawing = true
	}
	g.auto.Draw(nca.Stroke{
		Start:  g.prev,
		End:    pos,
		Radius: g.brushRadius,
		Shape:  g.brushShape,
		Color:  palette[g.colorAt].rgb,
	})
	g.prev = pos
}

// Draw renders the current simulation state and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.auto.Cells(), g.scale)
	shape := "circle"
	if g.brushShape == nca.ShapeSquare {
		shape = "square"
	}
	g.hud.Draw(screen, ui.Status{
		TPS:         g.pacer.TPS(),
		Paused:      g.paused,
		BrushRadius: g.brushRadius,
		BrushShape:  shape,
		BrushColor:  palette[g.colorAt].name,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.auto.Size()
	return size.W * g.scale, size.H * g.scale
}
