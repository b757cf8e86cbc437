package core

// Buffers owns the two equally-sized grids used in ping-pong fashion. Exactly
// one grid is "front" (the current simulation state, read for rendering and
// painted by the brush) while the other is the write target of the next step.
// Swapping flips the roles without copying cell data.
type Buffers struct {
	a, b   *Grid
	frontA bool
}

// NewBuffers allocates both grids with the given dimensions.
func NewBuffers(w, h int) (*Buffers, error) {
	a, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	b, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	return &Buffers{a: a, b: b, frontA: true}, nil
}

// Front returns the current grid.
func (b *Buffers) Front() *Grid {
	if b.frontA {
		return b.a
	}
	return b.b
}

// Back returns the grid that the next step writes into.
func (b *Buffers) Back() *Grid {
	if b.frontA {
		return b.b
	}
	return b.a
}

// Swap exchanges which grid is current. Called only at step boundaries.
func (b *Buffers) Swap() { b.frontA = !b.frontA }

// Size reports the shared grid dimensions.
func (b *Buffers) Size() Size { return Size{W: b.a.W, H: b.a.H} }
