package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	_ "reflector/internal/lens"
	"reflector/internal/platform"
)

const platformInput = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
`

func run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	a := New()
	a.NewLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }

	var out bytes.Buffer
	cmd := a.Command()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(in))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestPuzzleCommands(t *testing.T) {
	lenses := "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7\n"
	tests := []struct {
		args []string
		in   string
		want string
	}{
		{args: []string{"platform"}, in: platformInput, want: "64\n"},
		{args: []string{"--verbose", "platform"}, in: platformInput, want: "64\n"},
		{args: []string{"hash"}, in: lenses, want: "1320\n"},
		{args: []string{"lenses"}, in: lenses, want: "145\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := run(t, tt.in, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPlatformCommandReportsParseError(t *testing.T) {
	_, err := run(t, "O.\n.O.\n", "platform")
	var perr *platform.ParseError
	require.ErrorAs(t, err, &perr)
	require.Contains(t, err.Error(), "platform: line 2")
}

func TestSweepCommand(t *testing.T) {
	got, err := run(t, "", "sweep", "--seeds", "8", "--rows", "6", "--cols", "6", "--cycles", "200", "--workers", "2")
	require.NoError(t, err)
	require.Contains(t, got, "Sweeping 8 platforms of 6x6 (2 workers, 200 cycles)")
	require.Contains(t, got, "Checked 8 platforms")
	require.Contains(t, got, "0 mismatches")
}

func TestRejectsArguments(t *testing.T) {
	_, err := run(t, platformInput, "platform", "extra")
	require.Error(t, err)
}

func TestSweepConfigDefaults(t *testing.T) {
	cfg := NewSweepConfig()
	require.Equal(t, 10, cfg.Rows)
	require.Equal(t, 10, cfg.Cols)
	require.Equal(t, 1000, cfg.Cycles)
}
