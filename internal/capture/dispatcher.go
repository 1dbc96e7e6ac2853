// Package capture turns a resolved window id into an image file on disk:
// output path synthesis, delegation to the platform capturer, and optional
// downscaling of the result.
package capture

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mj1618/screencap/internal/platform"
)

// Dispatcher writes window captures to disk.
type Dispatcher struct {
	Capturer platform.Capturer
	Dir      string           // destination for auto-named captures
	Scale    float64          // 0.1-1.0 downscales the saved image; anything else leaves it untouched
	Now      func() time.Time // defaults to time.Now
}

// Capture rasterizes the window to outputFile, or to an auto-named file in
// the configured directory when outputFile is empty. Returns the path
// written. The destination directory is created if missing.
func (d *Dispatcher) Capture(windowID, title, outputFile string) (string, error) {
	dest := outputFile
	if dest == "" {
		if err := os.MkdirAll(d.Dir, 0o755); err != nil {
			return "", fmt.Errorf("creating screenshot directory: %w", err)
		}
		now := time.Now
		if d.Now != nil {
			now = d.Now
		}
		dest = filepath.Join(d.Dir, Filename(title, now()))
	}

	if err := d.Capturer.CaptureWindow(windowID, dest); err != nil {
		return "", err
	}

	if d.Scale >= 0.1 && d.Scale < 1.0 {
		if err := scaleDown(dest, d.Scale); err != nil {
			return "", fmt.Errorf("scaling %s: %w", dest, err)
		}
	}
	return dest, nil
}
