package platform

import (
	"io"

	"go.uber.org/zap"

	"reflector/internal/core"
)

// Solver answers the platform puzzle: the north load after the configured
// number of spin cycles.
type Solver struct {
	cfg Config
}

// NewSolver returns a Solver using cfg.
func NewSolver(cfg Config) *Solver { return &Solver{cfg: cfg} }

// Name returns the solver identifier.
func (s *Solver) Name() string { return "platform" }

// Summary describes the solver for command help.
func (s *Solver) Summary() string {
	return "Spin the tilting platform and print the north load"
}

// Solve parses the platform, runs the simulation and returns its weight.
func (s *Solver) Solve(in io.Reader, log *zap.Logger) (int, error) {
	p, err := Parse(in)
	if err != nil {
		return 0, err
	}
	markers := p.Markers()
	res := Simulate(p, s.cfg)
	weight := p.Weight()

	log.Debug("platform simulated",
		zap.Int("width", p.grid.W),
		zap.Int("height", p.grid.H),
		zap.Int("markers", markers),
		zap.Int("cycles", s.cfg.Cycles),
		zap.Bool("shortcut", s.cfg.Shortcut),
		zap.Int("spins", res.Spins),
		zap.Bool("detected", res.Detected),
		zap.Int("cycle_start", res.CycleStart),
		zap.Int("period", res.Period),
		zap.Int("weight", weight))
	if res.Collisions > 0 {
		log.Warn("fingerprint collisions during cycle detection", zap.Int("collisions", res.Collisions))
	}
	return weight, nil
}

func init() {
	core.Register("platform", func(cfg map[string]string) core.Solver {
		return NewSolver(FromMap(cfg))
	})
}
