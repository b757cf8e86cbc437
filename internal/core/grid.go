package core

import "fmt"

// Cell holds one grid location's state as four float32 components. R, G and B
// are the three independent automaton channels; A is carried along and forced
// to 1 by every writer.
type Cell struct {
	R, G, B, A float32
}

// Grid stores a 2D field of float RGBA cells in row-major order, four floats
// per cell, origin at the top-left corner. The render path consumes the same
// layout directly.
type Grid struct {
	W, H int
	data []float32
}

// NewGrid allocates a grid with the given dimensions. Non-positive dimensions
// are a configuration error and are rejected.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	return &Grid{W: w, H: h, data: make([]float32, 4*w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []float32 { return g.data }

// Index returns the slice offset of the first component of cell (x, y).
func (g *Grid) Index(x, y int) int { return 4 * (y*g.W + x) }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the cell at (x, y). Coordinates must be in range.
func (g *Grid) At(x, y int) Cell {
	i := g.Index(x, y)
	return Cell{R: g.data[i], G: g.data[i+1], B: g.data[i+2], A: g.data[i+3]}
}

// Set overwrites the cell at (x, y). Coordinates must be in range.
func (g *Grid) Set(x, y int, c Cell) {
	i := g.Index(x, y)
	g.data[i] = c.R
	g.data[i+1] = c.G
	g.data[i+2] = c.B
	g.data[i+3] = c.A
}

// Channel returns component c (0..3) of the cell at (x, y) after toroidal
// wrapping, so neighborhood lookups have no edge cases.
func (g *Grid) Channel(x, y, c int) float32 {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)+c]
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
