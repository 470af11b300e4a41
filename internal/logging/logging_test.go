package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	quiet, err := New(false)
	require.NoError(t, err)
	require.False(t, quiet.Core().Enabled(zapcore.DebugLevel))
	require.True(t, quiet.Core().Enabled(zapcore.InfoLevel))

	verbose, err := New(true)
	require.NoError(t, err)
	require.True(t, verbose.Core().Enabled(zapcore.DebugLevel))
}
