package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/fable/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fable.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	assert.Error(t, err)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
assets_dir: stories
story: cave.yaml
debug: true
log_format: json
strict: true
redis:
  addr: localhost:6379
  db: "2"
`)

	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "stories", cfg.AssetsDir)
	assert.Equal(t, "cave.yaml", cfg.Story)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "fable:story:", cfg.Redis.Prefix, "unset keys keep defaults")
	assert.NoError(t, cfg.Validate())
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "assets_dir: a\nfont: NotoSans\n")
	_, err := config.Load(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "font")
}

func TestLoad_SyntaxError(t *testing.T) {
	path := writeConfig(t, "assets_dir: [a\n")
	_, err := config.Load(path, true)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.LogFormat = "xml"
	assert.Error(t, cfg.Validate())

	cfg = config.Default()
	cfg.AssetsDir = ""
	assert.Error(t, cfg.Validate())

	cfg.Redis.Addr = "localhost:6379"
	assert.NoError(t, cfg.Validate())
}
