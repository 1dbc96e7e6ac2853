package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_Default(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	home, _ := os.UserHomeDir()
	if cfg.ScreenshotDir != filepath.Join(home, "Desktop") {
		t.Errorf("ScreenshotDir = %q, want ~/Desktop expanded", cfg.ScreenshotDir)
	}
}

func TestLoadFrom_Dotenv(t *testing.T) {
	dir := t.TempDir()
	content := "# comment\n\nSCREENSHOT_DIR=/tmp/shots\nOTHER=ignored\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ScreenshotDir != "/tmp/shots" {
		t.Errorf("ScreenshotDir = %q, want /tmp/shots", cfg.ScreenshotDir)
	}
}

func TestLoadFrom_EnvironmentOverridesDotenv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SCREENSHOT_DIR=/from/file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(dir, []string{"SCREENSHOT_DIR=/from/env"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ScreenshotDir != "/from/env" {
		t.Errorf("ScreenshotDir = %q, want /from/env", cfg.ScreenshotDir)
	}
}

func TestLoadFrom_QuotedValue(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(`SCREENSHOT_DIR="/with spaces/shots"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ScreenshotDir != "/with spaces/shots" {
		t.Errorf("ScreenshotDir = %q", cfg.ScreenshotDir)
	}
}

func TestLoadFrom_TildeExpansion(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), []string{"SCREENSHOT_DIR=~/Pictures/caps"})
	if err != nil {
		t.Fatal(err)
	}
	home, _ := os.UserHomeDir()
	if cfg.ScreenshotDir != filepath.Join(home, "Pictures", "caps") {
		t.Errorf("ScreenshotDir = %q", cfg.ScreenshotDir)
	}
}
