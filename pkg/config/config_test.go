package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yml"))
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Listen)
	assert.Equal(t, "https://kyfw.12306.cn", cfg.Upstream.BaseURL)
	assert.Equal(t, 8, cfg.Upstream.TimeoutSeconds)
	assert.Equal(t, 5, cfg.Heal.Code)
	assert.Equal(t, 6, cfg.Heal.Pinyin)
	assert.Equal(t, 7, cfg.Heal.PinyinShort)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  listen: ":9090"
upstream:
  timeout_seconds: 20
heal_windows:
  code: 4
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 20, cfg.Upstream.TimeoutSeconds)
	assert.Equal(t, 4, cfg.Heal.Code)

	// Untouched sections keep their defaults.
	assert.Equal(t, "https://kyfw.12306.cn", cfg.Upstream.BaseURL)
	assert.Equal(t, 6, cfg.Heal.Pinyin)
}

func TestLoad_EnvOverridesListen(t *testing.T) {
	t.Setenv("RAILGATE_LISTEN", ":7777")

	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yml"))
	require.NoError(t, err)
	assert.Equal(t, ":7777", cfg.Server.Listen)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: a mapping"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_ValidationRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
upstream:
  timeout_seconds: -1
`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
