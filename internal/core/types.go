package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is a position in grid coordinates with sub-cell precision. Cell (x, y)
// has its center at Point{float64(x), float64(y)}.
type Point struct {
	X float64
	Y float64
}

// RGB is a solid brush color with channel values in [0, 1].
type RGB struct {
	R, G, B float32
}
