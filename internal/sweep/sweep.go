// Package sweep checks the spin-cycle shortcut against the full simulation
// on many random platforms concurrently.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"reflector/internal/platform"
)

// Params controls a sweep.
type Params struct {
	// Seeds is the number of random platforms, seeded 0..Seeds-1 from First.
	Seeds   int
	First   int64
	Rows    int
	Cols    int
	Cycles  int
	Workers int
}

// DefaultParams mirrors the brute-force check: 10x10 grids, 1000 cycles.
func DefaultParams() Params {
	return Params{
		Seeds:   64,
		Rows:    10,
		Cols:    10,
		Cycles:  1000,
		Workers: runtime.NumCPU(),
	}
}

// Outcome is the comparison for one seed.
type Outcome struct {
	Seed       int64
	Match      bool
	Detected   bool
	CycleStart int
	Period     int
	Spins      int
	Weight     int
}

// Check runs one seed with and without the shortcut.
func Check(seed int64, rows, cols, cycles int) Outcome {
	full := platform.Random(seed, cols, rows)
	short := full.Clone()

	platform.Simulate(full, platform.Config{Cycles: cycles, Shortcut: false})
	res := platform.Simulate(short, platform.Config{Cycles: cycles, Shortcut: true})

	return Outcome{
		Seed:       seed,
		Match:      full.Equal(short),
		Detected:   res.Detected,
		CycleStart: res.CycleStart,
		Period:     res.Period,
		Spins:      res.Spins,
		Weight:     short.Weight(),
	}
}

// Run checks every seed and returns the outcomes ordered by seed.
func Run(ctx context.Context, p Params) ([]Outcome, error) {
	if p.Seeds <= 0 {
		return nil, nil
	}
	if p.Rows <= 0 || p.Cols <= 0 {
		return nil, fmt.Errorf("sweep: invalid grid size %dx%d", p.Rows, p.Cols)
	}
	workers := p.Workers
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan int64)
	results := make(chan Outcome)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < p.Seeds; i++ {
			select {
			case jobs <- p.First + int64(i):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	workerGroup, wctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		workerGroup.Go(func() error {
			for seed := range jobs {
				out := Check(seed, p.Rows, p.Cols, p.Cycles)
				select {
				case results <- out:
				case <-wctx.Done():
					return wctx.Err()
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(results)
		return workerGroup.Wait()
	})

	all := make([]Outcome, 0, p.Seeds)
	for out := range results {
		all = append(all, out)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return all, nil
}

// Mismatches returns the outcomes whose shortcut result diverged.
func Mismatches(outcomes []Outcome) []Outcome {
	var bad []Outcome
	for _, o := range outcomes {
		if !o.Match {
			bad = append(bad, o)
		}
	}
	return bad
}
