package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
backend:
  base_url: "http://ml.internal:9000"
  request_timeout: 45s
reports:
  dir: "/tmp/riskml-reports"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://ml.internal:9000", cfg.Backend.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "/tmp/riskml-reports", cfg.Reports.Dir)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "backend: {}\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "reports", cfg.Reports.Dir)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
