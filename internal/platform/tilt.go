package platform

// Direction names the edge markers slide toward.
type Direction uint8

const (
	North Direction = iota
	West
	South
	East
)

// SpinOrder is the tilt sequence of one spin cycle.
var SpinOrder = [...]Direction{North, West, South, East}

// sweep describes how a direction walks each line: vertical tilts walk the
// rows of every column, horizontal tilts walk the columns of every row.
// Descending walks visit the far end first, and offset is the step used
// when placing counted markers.
type sweep struct {
	vertical   bool
	descending bool
	offset     int
}

var sweeps = [...]sweep{
	North: {vertical: true, descending: true, offset: 1},
	South: {vertical: true, descending: false, offset: -1},
	West:  {vertical: false, descending: true, offset: 1},
	East:  {vertical: false, descending: false, offset: -1},
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	case East:
		return "east"
	default:
		return "unknown"
	}
}

// Tilt slides every marker toward the edge named by d until it rests
// against an obstacle, another marker or the edge. Unknown directions leave
// the platform unchanged.
func (p *Platform) Tilt(d Direction) {
	if int(d) >= len(sweeps) {
		return
	}
	s := sweeps[d]
	g := p.grid
	cells := g.Cells()

	// Each line is addressed as base + pos*stride.
	lines, span, stride := g.H, g.W, 1
	if s.vertical {
		lines, span, stride = g.W, g.H, g.W
	}

	place := func(base, pos, n int) {
		for ; n > 0; n-- {
			cells[base+pos*stride] = Marker
			pos += s.offset
		}
	}

	for line := 0; line < lines; line++ {
		base := g.Index(0, line)
		if s.vertical {
			base = g.Index(line, 0)
		}
		count := 0
		last := 0
		for k := 0; k < span; k++ {
			pos := k
			if s.descending {
				pos = span - 1 - k
			}
			i := base + pos*stride
			switch cells[i] {
			case Marker:
				count++
				cells[i] = Empty
			case Obstacle:
				place(base, pos+s.offset, count)
				count = 0
			}
			last = pos
		}
		place(base, last, count)
	}
}

// TiltNorth packs markers toward row 0.
func (p *Platform) TiltNorth() { p.Tilt(North) }

// TiltWest packs markers toward column 0.
func (p *Platform) TiltWest() { p.Tilt(West) }

// TiltSouth packs markers toward the last row.
func (p *Platform) TiltSouth() { p.Tilt(South) }

// TiltEast packs markers toward the last column.
func (p *Platform) TiltEast() { p.Tilt(East) }

// Spin runs one spin cycle: north, west, south, then east.
func (p *Platform) Spin() {
	for _, d := range SpinOrder {
		p.Tilt(d)
	}
}
