package platform

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in := strings.Join(example, "\n") + "\n"
	p, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, example, p.Rows())
	require.Equal(t, 10, p.Grid().W)
	require.Equal(t, 10, p.Grid().H)
	require.Equal(t, 18, p.Markers())
}

func TestParseToleratesCRLFAndBlankEdges(t *testing.T) {
	p, err := Parse(strings.NewReader("\r\nO.#\r\n.O.\r\n\r\n\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"O.#", ".O."}, p.Rows())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ParseError
	}{
		{
			name: "ragged",
			in:   "O..\n.O\n",
			want: ParseError{Line: 2, Reason: "row has 2 cells, want 3"},
		},
		{
			name: "invalid cell",
			in:   "O..\n.x.\n",
			want: ParseError{Line: 2, Column: 2, Reason: `invalid cell 'x'`},
		},
		{
			name: "blank inside",
			in:   "O..\n\n.O.\n",
			want: ParseError{Line: 2, Reason: "blank row inside grid"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			require.Equal(t, tt.want, *perr)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader("\n\n"))
	require.ErrorIs(t, err, ErrEmptyGrid)
}

func TestParseErrorMessage(t *testing.T) {
	require.Equal(t, "platform: line 3, column 4: invalid cell 'x'",
		(&ParseError{Line: 3, Column: 4, Reason: "invalid cell 'x'"}).Error())
	require.Equal(t, "platform: line 2: blank row inside grid",
		(&ParseError{Line: 2, Reason: "blank row inside grid"}).Error())
}

func TestParseWideRows(t *testing.T) {
	wide := strings.Repeat(".", 100_000) + "O"
	p, err := Parse(strings.NewReader(wide + "\r\n" + wide + "\n"))
	require.NoError(t, err)
	require.Equal(t, 100_001, p.Grid().W)
	require.Equal(t, 2, p.Markers())

	_, err = Parse(strings.NewReader("...\n" + strings.Repeat(".", MaxRowWidth+3) + "\n"))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 2, perr.Line)
	require.Contains(t, perr.Reason, "row wider than")
}
