package app

import (
	"github.com/spf13/pflag"

	"reflector/internal/sweep"
)

// Config represents the persistent command-line parameters.
type Config struct {
	Verbose bool
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "enable debug logging")
}

// SweepConfig holds the sweep command parameters.
type SweepConfig struct {
	sweep.Params
}

// NewSweepConfig returns the default sweep parameters.
func NewSweepConfig() *SweepConfig {
	return &SweepConfig{Params: sweep.DefaultParams()}
}

// Bind attaches the sweep parameters to the provided FlagSet.
func (c *SweepConfig) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Seeds, "seeds", c.Seeds, "number of random platforms to check")
	fs.Int64Var(&c.First, "first", c.First, "first seed")
	fs.IntVar(&c.Rows, "rows", c.Rows, "platform rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "platform columns")
	fs.IntVar(&c.Cycles, "cycles", c.Cycles, "spin cycles per run")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of worker goroutines")
}
