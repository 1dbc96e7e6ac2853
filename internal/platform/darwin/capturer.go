//go:build darwin

package darwin

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// ScreenCapturer implements platform.Capturer using the screencapture tool
// that ships with macOS. Requires Screen Recording permission.
type ScreenCapturer struct{}

// CaptureWindow rasterizes the window with the given id to destPath.
func (c *ScreenCapturer) CaptureWindow(windowID, destPath string) error {
	cmd := exec.Command("screencapture", "-l", windowID, destPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("screencapture: %s (check Screen Recording permission in System Settings > Privacy & Security)", msg)
	}
	return nil
}
