package nca

import (
	"math"

	"nca-lab/internal/core"
)

// Shape selects the brush footprint swept along a stroke.
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeSquare
)

// Stroke describes one draw event between two consecutive pointer samples.
// Sweeping the footprint along the segment keeps fast strokes gap-free even
// when the pointer moves more than one cell between samples.
type Stroke struct {
	Start  core.Point
	End    core.Point
	Radius float64
	Shape  Shape
	Color  core.RGB
}

// paint rasterizes the stroke into the grid, overwriting every cell whose
// center lies within the swept shape. Radius <= 0 means the brush is disabled.
// The candidate window is the stroke's bounding box clipped to the grid, so
// every write is in range by construction.
func paint(g *core.Grid, s Stroke) {
	if s.Radius <= 0 {
		return
	}

	minX := clip(int(math.Floor(math.Min(s.Start.X, s.End.X)-s.Radius)), 0, g.W-1)
	maxX := clip(int(math.Ceil(math.Max(s.Start.X, s.End.X)+s.Radius)), 0, g.W-1)
	minY := clip(int(math.Floor(math.Min(s.Start.Y, s.End.Y)-s.Radius)), 0, g.H-1)
	maxY := clip(int(math.Ceil(math.Max(s.Start.Y, s.End.Y)+s.Radius)), 0, g.H-1)

	cell := core.Cell{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: 1}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			pos := core.Point{X: float64(x), Y: float64(y)}
			proj := closestOnSegment(s.Start, s.End, pos)
			dx := pos.X - proj.X
			dy := pos.Y - proj.Y
			if math.Abs(dx) > s.Radius || math.Abs(dy) > s.Radius {
				continue
			}
			// The square brush is exactly the bounding box around the
			// projection. The circle rounds the distance first, which keeps
			// the boundary inclusive at .5 on purpose.
			if s.Shape == ShapeCircle && math.Round(math.Hypot(dx, dy)) > s.Radius {
				continue
			}
			g.Set(x, y, cell)
		}
	}
}

// closestOnSegment returns the point on the segment from a to b closest to p
// (clamped projection). A degenerate segment collapses to its start point.
func closestOnSegment(a, b, p core.Point) core.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return a
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return core.Point{X: a.X + t*dx, Y: a.Y + t*dy}
}

func clip(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
