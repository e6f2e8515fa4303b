package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Log.Pattern)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.False(t, cfg.Log.File.Enabled)
	assert.Zero(t, cfg.Capture.MaxCapturedLen)
}

func TestLoadFromFile(t *testing.T) {
	content := `
log:
  level: debug
  file:
    enabled: true
    path: /tmp/strix.log
    max_size_mb: 10
capture:
  max_captured_len: 65535
report:
  format: json
`
	path := filepath.Join(t.TempDir(), "strix.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.File.Enabled)
	assert.Equal(t, "/tmp/strix.log", cfg.Log.File.Path)
	assert.Equal(t, 10, cfg.Log.File.MaxSizeMB)
	assert.Equal(t, uint32(65535), cfg.Capture.MaxCapturedLen)
	assert.Equal(t, "json", cfg.Report.Format)
	// Unset fields still get defaults.
	assert.NotEmpty(t, cfg.Log.Pattern)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
