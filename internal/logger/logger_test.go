package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("info level hides clblast call traces", func(t *testing.T) {
		logger, err := New("info")
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zap.InfoLevel))
		assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("debug level shows them", func(t *testing.T) {
		logger, err := New("debug")
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("invalid verbosity level", func(t *testing.T) {
		logger, err := New("loud")
		require.Error(t, err)
		assert.Nil(t, logger)
	})

	t.Run("empty verbosity level", func(t *testing.T) {
		logger, err := New("")
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zap.InfoLevel))
		assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("console encoding", func(t *testing.T) {
		logger, err := New("warn", WithConsole())
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zap.WarnLevel))
		assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	})
}
