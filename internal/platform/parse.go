package platform

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"reflector/internal/core"
)

// ErrEmptyGrid is returned when the input contains no rows.
var ErrEmptyGrid = errors.New("platform: empty grid")

// ParseError locates a malformed row or cell. Line and Column are 1-based;
// Column is zero for row-level problems.
type ParseError struct {
	Line   int
	Column int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("platform: line %d, column %d: %s", e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("platform: line %d: %s", e.Line, e.Reason)
}

// MaxRowWidth is the longest row Parse accepts.
const MaxRowWidth = 1 << 24

// Parse reads newline delimited rows of '.', 'O' and '#'. Leading and
// trailing blank lines are ignored; every other row must match the width of
// the first. Rows wider than MaxRowWidth fail with a ParseError.
func Parse(r io.Reader) (*Platform, error) {
	var rows []string
	blank := 0
	line := 1
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxRowWidth+2)
	for ; sc.Scan(); line++ {
		row := strings.TrimSuffix(sc.Text(), "\r")
		if row == "" {
			blank++
			continue
		}
		if blank > 0 && len(rows) > 0 {
			return nil, &ParseError{Line: line - blank, Reason: "blank row inside grid"}
		}
		blank = 0
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, &ParseError{
				Line:   line,
				Reason: fmt.Sprintf("row has %d cells, want %d", len(row), len(rows[0])),
			}
		}
		if col := strings.IndexFunc(row, func(c rune) bool {
			return c != rune(Empty) && c != rune(Marker) && c != rune(Obstacle)
		}); col >= 0 {
			return nil, &ParseError{Line: line, Column: col + 1, Reason: fmt.Sprintf("invalid cell %q", row[col])}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); errors.Is(err, bufio.ErrTooLong) {
		return nil, &ParseError{Line: line, Reason: fmt.Sprintf("row wider than %d cells", MaxRowWidth)}
	} else if err != nil {
		return nil, fmt.Errorf("platform: read input: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	return New(core.GridFromRows(rows)), nil
}
