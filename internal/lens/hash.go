// Package lens implements the HASH algorithm and the HASHMAP procedure that
// arranges labeled lenses into 256 boxes.
package lens

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Hash returns the HASH value of s, in [0, 256).
func Hash(s string) int {
	cur := 0
	for i := 0; i < len(s); i++ {
		cur = (cur + int(s[i])) * 17 % 256
	}
	return cur
}

// Steps reads comma separated steps from every line of r. Surrounding
// whitespace is trimmed and empty steps are dropped.
func Steps(r io.Reader) ([]string, error) {
	var steps []string
	sc := bufio.NewScanner(r)
	// Puzzle inputs are a single long line.
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		for _, step := range strings.Split(sc.Text(), ",") {
			step = strings.TrimSpace(step)
			if step != "" {
				steps = append(steps, step)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lens: read input: %w", err)
	}
	return steps, nil
}

// SumHashes returns the sum of the HASH value of every step.
func SumHashes(steps []string) int {
	sum := 0
	for _, s := range steps {
		sum += Hash(s)
	}
	return sum
}
