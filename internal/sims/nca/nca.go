// Package nca implements a per-color-channel neural cellular automaton: each
// cell holds three independent scalars, updated every step by convolving the
// 3x3 toroidal neighborhood with a channel-specific filter and passing the sum
// through a channel-specific activation.
package nca

import (
	"runtime"
	"sync"

	"nca-lab/internal/core"
)

// Automaton runs the simulation on a double-buffered grid. Step, Draw, Reset
// and pixel reads are serialized on one mutex: the current buffer is a
// single-writer resource, so a draw event and a step never touch the same
// buffer concurrently.
type Automaton struct {
	cfg Config

	mu      sync.Mutex
	buffers *core.Buffers
	params  *Params
}

// New constructs a seeded automaton. Dimension errors from grid creation are
// returned to the caller; the engine never runs with a degenerate grid.
func New(cfg Config) (*Automaton, error) {
	if cfg.Band <= 0 {
		cfg.Band = defaultBand
	}
	buffers, err := core.NewBuffers(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	a := &Automaton{cfg: cfg, buffers: buffers, params: NewParams()}
	a.Reset()
	return a, nil
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return "nca" }

// Size reports the grid dimensions.
func (a *Automaton) Size() core.Size { return a.buffers.Size() }

// Params exposes the per-channel filter/activation store. Mutations through it
// take effect at the next step boundary.
func (a *Automaton) Params() *Params { return a.params }

// Reset reseeds the current buffer with the deterministic initial state.
func (a *Automaton) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	Seed(a.buffers.Front())
}

// Step advances the automaton by one tick: the current buffer is read in full
// while the next state is written into the other buffer, then the roles swap.
func (a *Automaton) Step() {
	a.mu.Lock()
	defer a.mu.Unlock()
	step(a.buffers.Front(), a.buffers.Back(), a.params.Snapshot(), a.cfg.Band)
	a.buffers.Swap()
}

// Draw paints a stroke into the current buffer, in place. Partial strokes are
// valid, permanent mutations; there is no rollback.
func (a *Automaton) Draw(s Stroke) {
	a.mu.Lock()
	defer a.mu.Unlock()
	paint(a.buffers.Front(), s)
}

// Cells exposes the current buffer's raw RGBA float data, row-major from the
// top-left corner, for the presentation layer. The caller must not retain the
// slice across a Step.
func (a *Automaton) Cells() []float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buffers.Front().Cells()
}

// step applies one full transition from src into dst. Every cell is computed
// independently from the settled src state, which is what makes the dispatch
// order irrelevant and the double buffer mandatory.
func step(src, dst *core.Grid, channels [3]Channel, band int) {
	if src.W == 0 || src.H == 0 {
		return
	}
	forEachBand(src.H, band, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < src.W; x++ {
				dst.Set(x, y, transition(src, x, y, &channels))
			}
		}
	})
}

// transition computes the next state of one cell: per channel, the 3x3
// toroidal convolution followed by that channel's activation, clamped to
// [0, 1].
func transition(src *core.Grid, x, y int, channels *[3]Channel) core.Cell {
	var sums [3]float64
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			for c := 0; c < 3; c++ {
				sums[c] += float64(src.Channel(x+i, y+j, c)) * channels[c].Filter[i+1][j+1]
			}
		}
	}
	return core.Cell{
		R: clamp01(channels[0].Activation(sums[0])),
		G: clamp01(channels[1].Activation(sums[1])),
		B: clamp01(channels[2].Activation(sums[2])),
		A: 1,
	}
}

// clamp01 clamps to [0, 1]. NaN fails the lower comparison and resolves to 0,
// so a misbehaving activation produces a defined boundary value rather than a
// valid-looking garbage color.
func clamp01(v float64) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return float32(v)
}

// forEachBand splits rows [0, h) into fixed-height bands and runs fn over them
// on one worker per CPU. Bands may execute in any order.
func forEachBand(h, band int, fn func(y0, y1 int)) {
	if band <= 0 {
		band = defaultBand
	}
	bands := (h + band - 1) / band
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > bands {
		workers = bands
	}
	if workers <= 1 {
		fn(0, h)
		return
	}

	jobs := make(chan int, bands)
	for b := 0; b < bands; b++ {
		jobs <- b
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for b := range jobs {
				y0 := b * band
				y1 := y0 + band
				if y1 > h {
					y1 = h
				}
				fn(y0, y1)
			}
		}()
	}
	wg.Wait()
}
