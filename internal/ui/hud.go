//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a one-line status readout over the simulation view.
type HUD struct {
	visible bool
}

// NewHUD constructs a HUD instance.
func NewHUD() *HUD { return &HUD{visible: true} }

// Toggle flips HUD visibility.
func (h *HUD) Toggle() {
	if h != nil {
		h.visible = !h.visible
	}
}

// Draw renders the status line onto the provided screen.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if h == nil || !h.visible {
		return
	}
	state := "running"
	if s.Paused {
		state = "paused"
	}
	line := fmt.Sprintf("%d tps (%s) | brush %s r=%.1f %s",
		s.TPS, state, s.BrushShape, s.BrushRadius, s.BrushColor)
	text.Draw(screen, line, basicfont.Face7x13, 4, 14, color.White)
}
