package artwork

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"game-library/internal/library"
)

const (
	thumbWidth  = 300
	thumbHeight = 450
)

// Cache keeps one resized thumbnail per game path under Dir.
type Cache struct {
	Dir    string
	Client *Client
}

func NewCache(dir string, client *Client) *Cache {
	return &Cache{Dir: dir, Client: client}
}

func (c *Cache) key(g library.Game) string {
	sum := sha1.Sum([]byte(g.Path))
	return hex.EncodeToString(sum[:8])
}

func (c *Cache) path(g library.Game) string {
	return filepath.Join(c.Dir, "thumb_"+c.key(g)+".jpg")
}

func (c *Cache) idPath(g library.Game) string {
	return filepath.Join(c.Dir, "thumb_"+c.key(g)+".id")
}

// AppID returns the Steam app ID found for g by an earlier lookup.
func (c *Cache) AppID(g library.Game) (int, bool) {
	data, err := os.ReadFile(c.idPath(g))
	if err != nil {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Cached returns the thumbnail path if it is already on disk.
func (c *Cache) tempFile(pattern string) (string, error) {
	f, err := os.CreateTemp(c.Dir, pattern)
	if err != nil {
		return "", err
	}
	return f.Name(), f.Close()
}

func (c *Cache) Cached(g library.Game) (string, bool) {
	p := c.path(g)
	if _, err := os.Stat(p); err == nil {
		return p, true
	}
	return "", false
}

// Thumbnail returns a thumbnail for g, fetching store artwork for its name on
// first use.
func (c *Cache) Thumbnail(ctx context.Context, g library.Game) (string, error) {
	if p, ok := c.Cached(g); ok {
		return p, nil
	}
	if c.Client == nil {
		return "", ErrNoArtwork
	}

	items, err := c.Client.Search(ctx, g.Name)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", ErrNoArtwork
	}

	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(c.idPath(g), []byte(strconv.Itoa(items[0].ID)), 0644); err != nil {
		return "", err
	}

	download, err := c.tempFile("download_*.jpg")
	if err != nil {
		return "", err
	}
	defer os.Remove(download)

	if err := c.Client.Download(ctx, items[0].ID, download); err != nil {
		return "", err
	}

	// Resize next to the destination and rename, so a concurrent lookup for
	// the same game never sees a half-written thumbnail.
	resized, err := c.tempFile("resize_*.jpg")
	if err != nil {
		return "", err
	}
	defer os.Remove(resized)

	if err := Resize(download, resized, thumbWidth, thumbHeight); err != nil {
		return "", err
	}
	dest := c.path(g)
	if err := os.Rename(resized, dest); err != nil {
		return "", err
	}
	return dest, nil
}
