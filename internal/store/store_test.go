package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s := DefaultSettings()
	s.Red.Filter = [9]float64{1, 1, 1, 1, -8, 1, 1, 1, 1}
	s.Red.Activation = "abs(x)"
	s.Blue.Activation = "1 - exp2(-0.6 * x * x)"

	if err := SaveSettings(path, s); err != nil {
		t.Fatal(err)
	}
	got := LoadSettings(path)
	if got != s {
		t.Fatalf("loaded settings %+v, expected %+v", got, s)
	}
}

func TestLoadSettingsMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	got := LoadSettings(path)
	if got != DefaultSettings() {
		t.Fatalf("missing file yielded %+v, expected defaults", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("defaults were not written back: %v", err)
	}
	// A second load reads the file it just wrote.
	if again := LoadSettings(path); again != got {
		t.Fatal("reloading written defaults disagreed")
	}
}

func TestLoadSettingsMalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := LoadSettings(path); got != DefaultSettings() {
		t.Fatalf("malformed file yielded %+v, expected defaults", got)
	}
}

func TestSettingsChannelsOrder(t *testing.T) {
	s := DefaultSettings()
	s.Red.Activation = "r"
	s.Green.Activation = "g"
	s.Blue.Activation = "b"
	chs := s.Channels()
	if chs[0].Activation != "r" || chs[1].Activation != "g" || chs[2].Activation != "b" {
		t.Fatalf("Channels() order wrong: %+v", chs)
	}
}

func TestPresetsRoundTripWithAdd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	p := DefaultPresets()
	p.AddFilter("shift left", [9]float64{0, 1, 0, 0, 0, 0, 0, 0, 0})
	p.AddActivation("step", "clamp(sign(x), 0, 1)")

	if err := SavePresets(path, p); err != nil {
		t.Fatal(err)
	}
	got := LoadPresets(path)

	if len(got.Filters) != len(p.Filters) || len(got.Activations) != len(p.Activations) {
		t.Fatalf("preset counts changed across round trip: %+v", got)
	}
	last := got.Filters[len(got.Filters)-1]
	if last.Name != "shift left" || last.Coeffs[1] != 1 {
		t.Fatalf("added filter preset lost: %+v", last)
	}
	lastAct := got.Activations[len(got.Activations)-1]
	if lastAct.Name != "step" || lastAct.Source != "clamp(sign(x), 0, 1)" {
		t.Fatalf("added activation preset lost: %+v", lastAct)
	}
}

func TestLoadPresetsMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	got := LoadPresets(path)
	if len(got.Filters) == 0 || len(got.Activations) == 0 {
		t.Fatalf("default presets empty: %+v", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("defaults were not written back: %v", err)
	}
}
