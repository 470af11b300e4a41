package core

import "strings"

// Grid stores a 2D grid of byte-sized cell values in row-major order.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// GridFromRows builds a grid from equal-length rows. The caller is
// responsible for checking that rows is non-empty and rectangular.
func GridFromRows(rows []string) *Grid {
	h := len(rows)
	w := len(rows[0])
	g := &Grid{W: w, H: h, data: make([]uint8, 0, w*h)}
	for _, row := range rows {
		g.data = append(g.data, row...)
	}
	return g
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Count returns the number of cells holding v.
func (g *Grid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: append([]uint8(nil), g.data...)}
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	return string(g.data) == string(o.data)
}

// Rows renders each row as a string.
func (g *Grid) Rows() []string {
	rows := make([]string, g.H)
	for y := range rows {
		rows[y] = string(g.data[y*g.W : (y+1)*g.W])
	}
	return rows
}

// String renders the grid as newline separated rows.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
