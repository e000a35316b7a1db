package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fxnlabs/clblast/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		config, err := LoadConfig("../../fixtures/tests/config/valid_config.yaml")
		require.NoError(t, err)
		require.NotNil(t, config)

		assert.Equal(t, "debug", config.Logger.Verbosity)
		assert.Equal(t, 1, config.Device.Platform)
		assert.Equal(t, 0, config.Device.Index)
		assert.Equal(t, []GemmSize{{Streams: 16, Samples: 3}}, config.Bench.Sizes)
		assert.Equal(t, 2, config.Bench.Repeat)
		assert.Equal(t, uint64(7), config.Bench.Seed)
		assert.False(t, config.Bench.Verify)
		assert.Equal(t, 0.5, config.Bench.Tolerance)
		assert.Equal(t, "127.0.0.1:9100", config.Metrics.ListenAddress)
		assert.Equal(t, 30*time.Second, config.Serve.Interval)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		config, err := LoadConfig("../../fixtures/tests/config/partial_config.yaml")
		require.NoError(t, err)
		assert.Equal(t, uint64(1234), config.Bench.Seed)
		assert.Equal(t, Default().Bench.Sizes, config.Bench.Sizes)
		assert.Equal(t, -1, config.Device.Index)
		assert.True(t, config.Bench.Verify)
	})

	t.Run("non-existent file", func(t *testing.T) {
		_, err := LoadConfig("non-existent-file.yaml")
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir, err := os.Getwd()
		require.NoError(t, err)

		configPath := filepath.Join(dir, "..", "..", "fixtures", "tests", "invalid_config", "config.yaml")
		_, err = LoadConfig(configPath)
		assert.Error(t, err)
	})

	t.Run("values rejected by validation", func(t *testing.T) {
		_, err := LoadConfig("../../fixtures/tests/config/bad_values.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "streams must be positive")
		assert.Contains(t, err.Error(), "repeat must be at least 1")
		assert.Contains(t, err.Error(), "tolerance must not be negative")
	})
}

func TestDefault(t *testing.T) {
	require.NoError(t, Default().Validate())

	c := Default()
	c.Bench.Sizes = nil
	assert.Error(t, c.Validate())

	c = Default()
	c.Device.Index = -2
	assert.Error(t, c.Validate())

	c = Default()
	c.Serve.Interval = 0
	assert.Error(t, c.Validate())
}

func TestTemplateMatchesDefaults(t *testing.T) {
	config := Default()
	config.Bench.Seed = 0
	require.NoError(t, yaml.Unmarshal(fixtures.ConfigTemplate, config))
	assert.Equal(t, Default(), config)
}
