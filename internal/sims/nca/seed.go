package nca

import (
	"math"

	"nca-lab/internal/core"
)

// hashMix is a 32-bit xor-shift/multiply avalanche mix. Together with the
// per-channel index offsets in Seed it fully determines the initial state, so
// seeding is reproducible with no external entropy.
func hashMix(v uint32) uint32 {
	s := v
	s ^= 2747636419
	s *= 2654435769
	s ^= s >> 16
	s *= 2654435769
	s ^= s >> 16
	s *= 2654435769
	return s
}

// randFloat maps a hash input to a float in [0, 1].
func randFloat(v uint32) float32 {
	return float32(float64(hashMix(v)) / float64(math.MaxUint32))
}

// Seed fills the grid with deterministic pseudo-random channel values. Each
// cell's flat index is offset by 0, W*H and 2*W*H for the red, green and blue
// channels, so the three hash inputs never collide. Alpha is fixed at 1.
func Seed(g *core.Grid) {
	total := uint32(g.W * g.H)
	forEachBand(g.H, defaultBand, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < g.W; x++ {
				idx := uint32(y*g.W + x)
				g.Set(x, y, core.Cell{
					R: randFloat(idx),
					G: randFloat(total + idx),
					B: randFloat(2*total + idx),
					A: 1,
				})
			}
		}
	})
}
