// Package platform simulates the tilting platform of round markers and fixed
// obstacles, including the spin cycle and its periodic shortcut.
package platform

import (
	"hash/fnv"

	"reflector/internal/core"
	pcore "reflector/pkg/core"
)

// Cell values use the input alphabet directly so a grid renders as-is.
const (
	Empty    uint8 = '.'
	Marker   uint8 = 'O'
	Obstacle uint8 = '#'
)

var alphabet = []uint8{Empty, Marker, Obstacle}

// Platform is a grid of markers and obstacles mutated in place by tilts.
type Platform struct {
	grid *core.Grid
}

// New wraps an existing grid. The grid is not copied.
func New(g *core.Grid) *Platform {
	return &Platform{grid: g}
}

// FromRows builds a platform from literal rows without validation.
// It panics on an empty slice.
func FromRows(rows ...string) *Platform {
	return New(core.GridFromRows(rows))
}

// Random generates a w x h platform with cells drawn uniformly from the
// alphabet.
func Random(seed int64, w, h int) *Platform {
	g := core.NewGrid(w, h)
	pcore.FillChoice(pcore.NewRNG(seed), g.Cells(), alphabet)
	return New(g)
}

// Grid exposes the underlying grid.
func (p *Platform) Grid() *core.Grid { return p.grid }

// Clone returns a deep copy.
func (p *Platform) Clone() *Platform { return New(p.grid.Clone()) }

// Equal reports whether both platforms hold identical cells.
func (p *Platform) Equal(o *Platform) bool { return p.grid.Equal(o.grid) }

// Markers returns the number of round markers.
func (p *Platform) Markers() int { return p.grid.Count(Marker) }

// Rows renders the platform row by row.
func (p *Platform) Rows() []string { return p.grid.Rows() }

func (p *Platform) String() string { return p.grid.String() }

// Weight returns the load on the north edge: every marker contributes the
// number of rows from its own row to the bottom edge inclusive.
func (p *Platform) Weight() int {
	g := p.grid
	cells := g.Cells()
	weight := 0
	for y := 0; y < g.H; y++ {
		row := cells[g.Index(0, y) : g.Index(0, y)+g.W]
		for _, c := range row {
			if c == Marker {
				weight += g.H - y
			}
		}
	}
	return weight
}

// Fingerprint returns a 64-bit FNV-1a digest of the cell contents. Distinct
// states may collide; callers that need certainty must compare cells.
func (p *Platform) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write(p.grid.Cells())
	return h.Sum64()
}
