package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int

	Settings string
	Presets  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    256,
		Height:   256,
		Scale:    3,
		TPS:      30,
		Settings: "settings.json",
		Presets:  "presets.json",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.StringVar(&c.Settings, "settings", c.Settings, "path to the channel settings file")
	fs.StringVar(&c.Presets, "presets", c.Presets, "path to the preset file")
}
