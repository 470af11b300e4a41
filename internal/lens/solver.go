package lens

import (
	"io"

	"go.uber.org/zap"

	"reflector/internal/core"
)

// HashSolver sums the HASH value of every step.
type HashSolver struct{}

// Name returns the solver identifier.
func (HashSolver) Name() string { return "hash" }

// Summary describes the solver for command help.
func (HashSolver) Summary() string { return "Print the sum of the HASH value of every step" }

// Solve reads the steps and sums their hashes.
func (HashSolver) Solve(in io.Reader, log *zap.Logger) (int, error) {
	steps, err := Steps(in)
	if err != nil {
		return 0, err
	}
	sum := SumHashes(steps)
	log.Debug("hashed steps", zap.Int("steps", len(steps)), zap.Int("sum", sum))
	return sum, nil
}

// LibrarySolver runs the HASHMAP procedure and reports the focusing power.
type LibrarySolver struct{}

// Name returns the solver identifier.
func (LibrarySolver) Name() string { return "lenses" }

// Summary describes the solver for command help.
func (LibrarySolver) Summary() string {
	return "Arrange lenses into boxes and print the total focusing power"
}

// Solve applies every step in order.
func (LibrarySolver) Solve(in io.Reader, log *zap.Logger) (int, error) {
	steps, err := Steps(in)
	if err != nil {
		return 0, err
	}
	var lib Library
	for _, raw := range steps {
		step, err := ParseStep(raw)
		if err != nil {
			return 0, err
		}
		lib.Apply(step)
	}
	power := lib.FocusingPower()
	log.Debug("arranged lenses", zap.Int("steps", len(steps)), zap.Int("focusing_power", power))
	return power, nil
}

func init() {
	core.Register("hash", func(map[string]string) core.Solver { return HashSolver{} })
	core.Register("lenses", func(map[string]string) core.Solver { return LibrarySolver{} })
}
