package rtkernel

import (
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// SavePNG writes an 8-bit preview of the canvas, quantized like the PPM body.
func SavePNG(c *Canvas, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return gg.SavePNG(path, c.Image())
}
