package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestScanFindsExecutables(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "zork", "Zork.EXE"))
	touch(t, filepath.Join(root, "doom", "bin", "doom.exe"))
	touch(t, filepath.Join(root, "doom", "readme.txt"))
	touch(t, filepath.Join(root, "Arcade.exe"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "folder.exe"), 0755))

	got, err := Scan(root, []string{".exe"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "Arcade.exe"),
		filepath.Join(root, "doom", "bin", "doom.exe"),
		filepath.Join(root, "zork", "Zork.EXE"),
	}, got)
}

func TestScanExtensionWithoutDot(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "game.sh"))
	touch(t, filepath.Join(root, "game.exe"))

	got, err := Scan(root, []string{"sh", " "})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "game.sh")}, got)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"), []string{".exe"})
	assert.Error(t, err)
}

func TestScanEmpty(t *testing.T) {
	got, err := Scan(t.TempDir(), []string{".exe"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScanFollowsFileSymlinks(t *testing.T) {
	target := filepath.Join(t.TempDir(), "install", "game.exe")
	touch(t, target)

	root := t.TempDir()
	link := filepath.Join(root, "Game.exe")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.exe"), filepath.Join(root, "broken.exe")))
	require.NoError(t, os.Symlink(t.TempDir(), filepath.Join(root, "dir.exe")))

	got, err := Scan(root, []string{".exe"})
	require.NoError(t, err)
	assert.Equal(t, []string{link}, got)
}
