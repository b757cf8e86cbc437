package ui

// Status summarizes the state shown on the HUD line.
type Status struct {
	TPS         int
	Paused      bool
	BrushRadius float64
	BrushShape  string
	BrushColor  string
}
