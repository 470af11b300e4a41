package platform

// Result summarises a simulation run.
type Result struct {
	// Spins is the number of spin cycles physically executed.
	Spins int
	// Detected reports whether a repeated state was found.
	Detected bool
	// CycleStart is the iteration at which the repeated state first appeared.
	CycleStart int
	// Period is the length of the repeating sequence.
	Period int
	// Collisions counts fingerprint matches where no stored state was equal.
	Collisions int
}

type seenState struct {
	iter  int
	cells string
}

// fingerprint keys the seen-state map. Tests replace it to force collisions.
var fingerprint = (*Platform).Fingerprint

// Simulate runs cfg.Cycles spin cycles on p in place. With cfg.Shortcut set
// it stops as soon as a state repeats and runs only the spins needed to land
// on the state the full run would reach.
func Simulate(p *Platform, cfg Config) Result {
	var res Result
	seen := make(map[uint64][]seenState)
	n := cfg.Cycles

	for i := 0; i < n; i++ {
		p.Spin()
		if res.Detected {
			continue
		}

		fp := fingerprint(p)
		cells := string(p.grid.Cells())
		bucket := seen[fp]
		prev := -1
		for _, s := range bucket {
			if s.cells == cells {
				prev = s.iter
				break
			}
		}
		if prev < 0 {
			if len(bucket) > 0 {
				res.Collisions++
			}
			seen[fp] = append(bucket, seenState{iter: i, cells: cells})
			continue
		}

		res.Detected = true
		res.CycleStart = prev
		res.Period = i - prev
		// Fingerprints are no longer needed once the period is known.
		seen = nil
		if !cfg.Shortcut {
			continue
		}

		remaining := (n - i - 1) % res.Period
		for j := 0; j < remaining; j++ {
			p.Spin()
		}
		res.Spins = i + 1 + remaining
		return res
	}

	if n > 0 {
		res.Spins = n
	}
	return res
}
