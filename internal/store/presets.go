package store

import (
	"encoding/json"
	"log"
	"os"
)

// FilterPreset is a named 3x3 kernel in row-major coefficient order.
type FilterPreset struct {
	Name   string     `json:"name"`
	Coeffs [9]float64 `json:"coeffs"`
}

// ActivationPreset is a named activation expression.
type ActivationPreset struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// Presets holds every saved filter and activation preset.
type Presets struct {
	Filters     []FilterPreset     `json:"filters"`
	Activations []ActivationPreset `json:"activations"`
}

// DefaultPresets returns the presets shipped with a fresh install.
func DefaultPresets() Presets {
	return Presets{
		Filters: []FilterPreset{
			{Name: "identity", Coeffs: [9]float64{0, 0, 0, 0, 1, 0, 0, 0, 0}},
			{Name: "laplacian", Coeffs: [9]float64{1, 1, 1, 1, -8, 1, 1, 1, 1}},
			{Name: "blur", Coeffs: [9]float64{0.0625, 0.125, 0.0625, 0.125, 0.25, 0.125, 0.0625, 0.125, 0.0625}},
		},
		Activations: []ActivationPreset{
			{Name: "identity", Source: "x"},
			{Name: "absolute", Source: "abs(x)"},
			{Name: "inverse gaussian", Source: "1 - exp2(-0.6 * x * x)"},
			{Name: "scaled absolute", Source: "abs(1.2 * x)"},
		},
	}
}

// AddFilter appends a named filter preset.
func (p *Presets) AddFilter(name string, coeffs [9]float64) {
	p.Filters = append(p.Filters, FilterPreset{Name: name, Coeffs: coeffs})
}

// AddActivation appends a named activation preset.
func (p *Presets) AddActivation(name, source string) {
	p.Activations = append(p.Activations, ActivationPreset{Name: name, Source: source})
}

// LoadPresets reads presets from path. A missing or malformed file yields the
// defaults, which are also written back.
func LoadPresets(path string) Presets {
	data, err := os.ReadFile(path)
	if err == nil {
		var p Presets
		if err := json.Unmarshal(data, &p); err == nil {
			return p
		}
		log.Printf("store: malformed presets in %s, falling back to defaults", path)
	}
	p := DefaultPresets()
	if err := SavePresets(path, p); err != nil {
		log.Printf("store: writing default presets: %v", err)
	}
	return p
}

// SavePresets writes presets to path as indented JSON.
func SavePresets(path string, p Presets) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
