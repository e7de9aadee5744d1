package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GAMELIB_DATA_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, filepath.Join(dir, "games_config.json"), cfg.StorePath())
	assert.Equal(t, filepath.Join(dir, "config.json"), cfg.SettingsPath())
	assert.Equal(t, filepath.Join(dir, "images"), cfg.ImagesDir())
	assert.Equal(t, float32(150), cfg.TileSize)
	assert.Equal(t, 20, cfg.MaxColumns)
	assert.Equal(t, 16, cfg.MarqueeWidth)
	assert.Equal(t, 300*time.Millisecond, cfg.MarqueeInterval)
	assert.Equal(t, []string{".exe"}, cfg.ScanExtensions)
	assert.Equal(t, "umu-run", cfg.Runner)
	assert.True(t, cfg.Artwork)
	assert.True(t, cfg.Watch)
}

func TestLoadDataDirDefaultsToExecutable(t *testing.T) {
	t.Setenv("GAMELIB_DATA_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.DataDir)
	assert.True(t, filepath.IsAbs(cfg.DataDir))
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "library.json")
	t.Setenv("GAMELIB_DATA_DIR", dir)
	t.Setenv("GAMELIB_STORE_FILE", abs)
	t.Setenv("GAMELIB_TILE_SIZE", "96.5")
	t.Setenv("GAMELIB_SCAN_EXTENSIONS", ".exe,.sh,.x86_64")
	t.Setenv("GAMELIB_MARQUEE_INTERVAL", "1s")
	t.Setenv("GAMELIB_ARTWORK", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.StorePath())
	assert.Equal(t, float32(96.5), cfg.TileSize)
	assert.Equal(t, []string{".exe", ".sh", ".x86_64"}, cfg.ScanExtensions)
	assert.Equal(t, time.Second, cfg.MarqueeInterval)
	assert.False(t, cfg.Artwork)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("GAMELIB_DATA_DIR", t.TempDir())
	t.Setenv("GAMELIB_MAX_COLUMNS", "0")
	t.Setenv("GAMELIB_TILE_SIZE", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max columns")
	assert.Contains(t, err.Error(), "tile size")
}

func TestLoadRejectsUnparsable(t *testing.T) {
	t.Setenv("GAMELIB_DATA_DIR", t.TempDir())
	t.Setenv("GAMELIB_MAX_COLUMNS", "many")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, Settings{}, s)

	want := Settings{SortOrder: "desc", BackgroundImagePath: "/img/bg.jpg"}
	require.NoError(t, SaveSettings(path, want))

	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, SaveSettings(path, Settings{}))
	require.NoError(t, writeFile(path, "[1,2"))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
