package platform

import "strconv"

const (
	// DefaultCycles is the number of spin cycles the puzzle asks for.
	DefaultCycles = 1_000_000_000
	// DefaultShortcut enables skipping ahead once the spin sequence repeats.
	DefaultShortcut = true
)

// Config controls a simulation run.
type Config struct {
	Cycles   int
	Shortcut bool
}

// DefaultConfig returns the build time configuration.
func DefaultConfig() Config {
	return Config{Cycles: DefaultCycles, Shortcut: DefaultShortcut}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cycles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Cycles = parsed
		}
	}
	if v, ok := cfg["shortcut"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Shortcut = parsed
		}
	}
	return c
}
