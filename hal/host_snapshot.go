//go:build !tinygo

package hal

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// writeSnapshot replaces path with a PNG of an RGB565 frame.
func writeSnapshot(path string, width, height int, frame []byte) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rgbaFrom565(img.Pix, frame)

	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*.png")
	if err != nil {
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	if err := png.Encode(tmp, img); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("snapshot %q: encode: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	return nil
}
