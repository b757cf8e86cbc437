package nca

// Config controls the automaton dimensions and step dispatch.
type Config struct {
	Width  int
	Height int

	// Band is the number of rows handed to a worker at a time. Purely a
	// locality tuning knob; zero selects the default.
	Band int
}

const defaultBand = 8

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Band:   defaultBand,
	}
}
