//go:build darwin

package darwin

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

const visibleAppsScript = `tell application "System Events" to get name of every application process whose visible is true`

// SystemEventsLister implements platform.AppLister via osascript. Requires
// Automation permission for System Events.
type SystemEventsLister struct{}

// VisibleApps returns the names of all visible application processes.
func (l *SystemEventsLister) VisibleApps() ([]string, error) {
	out, err := runAppleScript(visibleAppsScript)
	if err != nil {
		return nil, fmt.Errorf("listing visible applications: %w", err)
	}

	var apps []string
	for _, name := range strings.Split(out, ",") {
		if name = strings.TrimSpace(name); name != "" {
			apps = append(apps, name)
		}
	}
	return apps, nil
}

func runAppleScript(script string) (string, error) {
	cmd := exec.Command("osascript", "-e", script)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("osascript: %s", msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}
