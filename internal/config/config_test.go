package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvFormat, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvFormat, "")

	path := filepath.Join(t.TempDir(), "tableshaper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /srv/data\nformat: bar\npretty: true\nlogging:\n  level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/data", cfg.DataDir)
	assert.Equal(t, "bar", cfg.Format)
	assert.True(t, cfg.Pretty)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "broadband", cfg.Broadband, "unset keys keep defaults")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "config file not found")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [unclosed"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("data dir", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/datasets")
		t.Setenv(EnvFormat, "")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/datasets", cfg.DataDir)
		assert.Equal(t, "table", cfg.Format)
	})

	t.Run("format overrides file", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		t.Setenv(EnvFormat, "stacked-bar")

		path := filepath.Join(t.TempDir(), "c.yaml")
		require.NoError(t, os.WriteFile(path, []byte("format: bar\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "stacked-bar", cfg.Format)
	})
}
