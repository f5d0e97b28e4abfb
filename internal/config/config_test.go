package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Pipeline.Workers)
	assert.Equal(t, 5*time.Minute, cfg.UnitTimeout())
	assert.Equal(t, 400, cfg.Cleaner.MaxLen)
	assert.Equal(t, 300, cfg.Cleaner.TruncateAt)
	assert.Equal(t, 20, cfg.Cleaner.HeaderColonLen)
	assert.Equal(t, "output/docs", cfg.Paths.Docs)
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
paths:
  docs: /tmp/docs
pipeline:
  workers: 4
  unit_timeout_sec: 60
cleaner:
  header_colon_len: 30
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/docs", cfg.Paths.Docs)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.Equal(t, time.Minute, cfg.UnitTimeout())
	assert.Equal(t, 30, cfg.HelpCleaner().HeaderColonLen)
	// Unset keys keep their defaults.
	assert.Equal(t, 400, cfg.Cleaner.MaxLen)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("STUBDOC_API_KEY", "test-key")
	t.Setenv("STUBDOC_WORKERS", "3")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.AI.APIKey)
	assert.Equal(t, 3, cfg.Pipeline.Workers)
}
