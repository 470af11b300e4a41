package core

import (
	"io"
	"sort"

	"go.uber.org/zap"
)

// Solver defines the minimal contract a puzzle must implement.
type Solver interface {
	Name() string
	Summary() string
	// Solve reads the whole puzzle input and returns the numeric answer.
	Solve(in io.Reader, log *zap.Logger) (int, error)
}

// Factory constructs a Solver using an optional configuration map.
type Factory func(cfg map[string]string) Solver

var solvers = map[string]Factory{}

// Register adds a solver factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	solvers[name] = f
}

// Solvers exposes the registry of available solver factories.
func Solvers() map[string]Factory {
	return solvers
}

// Names returns the registered solver names in sorted order.
func Names() []string {
	names := make([]string, 0, len(solvers))
	for name := range solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
