package artwork

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/nfnt/resize"
)

// Resize decodes src, scales it to width x height and writes a JPEG to dest.
// A zero dimension keeps the aspect ratio.
func Resize(src, dest string, width, height uint) error {
	file, err := os.Open(src)
	if err != nil {
		return err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("decode %s: %w", src, err)
	}

	m := resize.Resize(width, height, img, resize.Lanczos3)
	return writeJPEG(dest, m)
}

func writeJPEG(dest string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: 90}); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

const (
	maxBackgroundWidth  = 1920
	maxBackgroundHeight = 1080
)

// Background copies the image at src into dir, shrunk to fit 1920x1080, and
// returns the new path.
func Background(src, dir string) (string, error) {
	file, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", src, err)
	}

	m := resize.Thumbnail(maxBackgroundWidth, maxBackgroundHeight, img, resize.Lanczos3)

	destPath := filepath.Join(dir, fmt.Sprintf("background_%d.jpg", time.Now().UnixNano()))
	return destPath, writeJPEG(destPath, m)
}
