package capture

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 8, 30, 15, 4, 5, 0, time.Local)
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "Terminal", "Screenshot Terminal 2026-08-30 at 3.04.05 PM.png"},
		{"sanitized", "a/b:c", "Screenshot a-b-c 2026-08-30 at 3.04.05 PM.png"},
		{"empty_omits_segment", "", "Screenshot 2026-08-30 at 3.04.05 PM.png"},
		{"whitespace_only", "   ", "Screenshot 2026-08-30 at 3.04.05 PM.png"},
		{"trimmed", "  Notes  ", "Screenshot Notes 2026-08-30 at 3.04.05 PM.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.title, ts); got != tt.want {
				t.Errorf("Filename(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestFilename_MorningHourUnpadded(t *testing.T) {
	ts := time.Date(2026, 8, 30, 9, 30, 0, 0, time.Local)
	got := Filename("x", ts)
	if !strings.Contains(got, "at 9.30.00 AM") {
		t.Errorf("Filename = %q, want unpadded hour", got)
	}
}

// fileCapturer writes a tiny PNG to the destination path, standing in for
// the screencapture binary.
type fileCapturer struct {
	err      error
	lastID   string
	lastPath string
}

func (c *fileCapturer) CaptureWindow(windowID, destPath string) error {
	c.lastID = windowID
	c.lastPath = destPath
	if c.err != nil {
		return c.err
	}
	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, image.NewRGBA(image.Rect(0, 0, 40, 20)))
}

func TestDispatcher_ExplicitOutputPath(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "shot.png")
	fc := &fileCapturer{}
	d := &Dispatcher{Capturer: fc, Dir: filepath.Join(dir, "unused")}

	dest, err := d.Capture("23422", "Terminal", out)
	if err != nil {
		t.Fatal(err)
	}
	if dest != out {
		t.Errorf("dest = %q, want explicit path %q", dest, out)
	}
	if fc.lastID != "23422" {
		t.Errorf("window id = %q", fc.lastID)
	}
	// The unused auto-name directory must not be created for explicit paths.
	if _, err := os.Stat(filepath.Join(dir, "unused")); !os.IsNotExist(err) {
		t.Error("auto-name directory should not exist")
	}
}

func TestDispatcher_AutoNameCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "shots")
	fixed := time.Date(2026, 8, 30, 15, 4, 5, 0, time.Local)
	d := &Dispatcher{
		Capturer: &fileCapturer{},
		Dir:      dir,
		Now:      func() time.Time { return fixed },
	}

	dest, err := d.Capture("7", "Terminal", "")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "Screenshot Terminal 2026-08-30 at 3.04.05 PM.png")
	if dest != want {
		t.Errorf("dest = %q, want %q", dest, want)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("capture file missing: %v", err)
	}
}

func TestDispatcher_CaptureFailureSurfacesError(t *testing.T) {
	capErr := errors.New("screencapture: could not create image from window")
	d := &Dispatcher{Capturer: &fileCapturer{err: capErr}, Dir: t.TempDir()}

	if _, err := d.Capture("7", "", ""); !errors.Is(err, capErr) {
		t.Errorf("err = %v, want the capturer's error", err)
	}
}

func TestDispatcher_Scale(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "scaled.png")
	d := &Dispatcher{Capturer: &fileCapturer{}, Scale: 0.5}

	if _, err := d.Capture("7", "", out); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("scaled size = %dx%d, want 20x10", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if _, err := os.Stat(out + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after scaling")
	}
}

func TestDispatcher_ScaleOutOfRangeLeavesImage(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "full.png")
	d := &Dispatcher{Capturer: &fileCapturer{}, Scale: 1.5}

	if _, err := d.Capture("7", "", out); err != nil {
		t.Fatal(err)
	}
	f, _ := os.Open(out)
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 40 {
		t.Errorf("image was resized to %d wide, want untouched 40", img.Bounds().Dx())
	}
}
