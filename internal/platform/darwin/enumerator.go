//go:build darwin

package darwin

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// WindowEnumerator implements platform.Enumerator using the getwindowid
// command line tool (brew install smokris/getwindowid/getwindowid).
type WindowEnumerator struct{}

// ListWindows returns one descriptor line per window of the named app.
// getwindowid exits 1 when the app has no windows; that is an empty result,
// not an error.
func (e *WindowEnumerator) ListWindows(appName string) ([]string, error) {
	cmd := exec.Command("getwindowid", appName, "--list")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = err.Error()
			}
			return nil, fmt.Errorf("getwindowid %q: %s", appName, msg)
		}
	}

	trimmed := strings.TrimSpace(stdout.String())
	if trimmed == "" {
		return nil, nil
	}
	var descriptors []string
	for _, line := range strings.Split(trimmed, "\n") {
		if line != "" {
			descriptors = append(descriptors, line)
		}
	}
	return descriptors, nil
}
