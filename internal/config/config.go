// Package config loads the tool's runtime configuration. The only
// recognized option is SCREENSHOT_DIR, read from a .env file in the working
// directory or from the process environment, with the environment winning.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	envScreenshotDir = "SCREENSHOT_DIR"
	defaultDir       = "~/Desktop"
	dotenvName       = ".env"
)

// Config captures runtime configuration.
type Config struct {
	// ScreenshotDir is where auto-named captures are written, with ~
	// already expanded.
	ScreenshotDir string
}

// Load reads configuration from the current working directory and process
// environment.
func Load() (Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("resolving working directory: %w", err)
	}
	return LoadFrom(wd, os.Environ())
}

// LoadFrom allows tests to supply a specific directory and environment.
func LoadFrom(dir string, environ []string) (Config, error) {
	values := parseDotenv(filepath.Join(dir, dotenvName))
	for key, value := range parseEnviron(environ) {
		values[key] = value
	}

	raw := values[envScreenshotDir]
	if raw == "" {
		raw = defaultDir
	}
	expanded, err := expandHome(raw)
	if err != nil {
		return Config{}, err
	}
	return Config{ScreenshotDir: expanded}, nil
}

// parseDotenv reads KEY=VALUE lines from path. A missing or unreadable file
// is simply no configuration.
func parseDotenv(path string) map[string]string {
	values := make(map[string]string)
	f, err := os.Open(path)
	if err != nil {
		return values
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"'`)
	}
	return values
}

func parseEnviron(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, kv := range environ {
		if key, value, ok := strings.Cut(kv, "="); ok && value != "" {
			values[key] = value
		}
	}
	return values
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
