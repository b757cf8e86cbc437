// Package store persists the automaton's channel settings and the named
// filter/activation presets as JSON files. The engine never touches these
// types directly; the app layer translates them into compiled parameters.
package store

import (
	"encoding/json"
	"log"
	"os"
)

// ChannelSettings is the serialized form of one channel: a 3x3 filter as 9
// row-major coefficients and the activation expression source.
type ChannelSettings struct {
	Filter     [9]float64 `json:"filter"`
	Activation string     `json:"activation"`
}

// Settings holds the serialized state of all three channels.
type Settings struct {
	Red   ChannelSettings `json:"red"`
	Green ChannelSettings `json:"green"`
	Blue  ChannelSettings `json:"blue"`
}

// DefaultSettings returns identity filters with identity activations.
func DefaultSettings() Settings {
	identity := ChannelSettings{
		Filter:     [9]float64{0, 0, 0, 0, 1, 0, 0, 0, 0},
		Activation: "x",
	}
	return Settings{Red: identity, Green: identity, Blue: identity}
}

// Channels returns the three channel settings indexed 0..2.
func (s Settings) Channels() [3]ChannelSettings {
	return [3]ChannelSettings{s.Red, s.Green, s.Blue}
}

// LoadSettings reads settings from path. A missing or malformed file yields
// the defaults, which are also written back so the user has a file to edit.
func LoadSettings(path string) Settings {
	data, err := os.ReadFile(path)
	if err == nil {
		var s Settings
		if err := json.Unmarshal(data, &s); err == nil {
			return s
		}
		log.Printf("store: malformed settings in %s, falling back to defaults", path)
	}
	s := DefaultSettings()
	if err := SaveSettings(path, s); err != nil {
		log.Printf("store: writing default settings: %v", err)
	}
	return s
}

// SaveSettings writes settings to path as indented JSON.
func SaveSettings(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
