// Package window models enumerated application windows: parsing the raw
// descriptor lines the enumerator emits, filtering out UI noise, and
// ordering candidates for selection.
package window

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Record is one parsed window descriptor. Records are built once by Parse
// and never mutated afterwards.
type Record struct {
	ID     string // opaque window handle, numeric text
	App    string // owning application, attached by the pipeline
	Title  string // may be empty
	Width  int
	Height int
	Raw    string // original descriptor, kept for diagnostics
}

// DisplayTitle returns the title, or a placeholder for untitled windows.
func (r Record) DisplayTitle() string {
	if r.Title == "" {
		return "[No Title]"
	}
	return r.Title
}

// Size returns the window dimensions as "WIDTHxHEIGHT".
func (r Record) Size() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

var (
	idPattern    = regexp.MustCompile(`id=(\d+)`)
	titlePattern = regexp.MustCompile(`^"([^"]*)"`)
	sizePattern  = regexp.MustCompile(`size=(\d+)x(\d+)`)
)

// Parse turns one descriptor line into a Record. A descriptor carries a
// double-quoted title followed by key=value tokens; only the id token is
// mandatory. Missing title defaults to "", missing size to 0x0.
func Parse(descriptor string) (*Record, error) {
	idMatch := idPattern.FindStringSubmatch(descriptor)
	if idMatch == nil {
		return nil, fmt.Errorf("descriptor has no window id: %q", descriptor)
	}

	rec := &Record{ID: idMatch[1], Raw: descriptor}
	if m := titlePattern.FindStringSubmatch(descriptor); m != nil {
		rec.Title = m[1]
	}
	if m := sizePattern.FindStringSubmatch(descriptor); m != nil {
		if w, err := strconv.Atoi(m[1]); err == nil {
			rec.Width = w
		}
		if h, err := strconv.Atoi(m[2]); err == nil {
			rec.Height = h
		}
	}
	return rec, nil
}

// transientTitles are dialog titles that never denote a content window.
var transientTitles = map[string]bool{
	"New Command": true,
	"New Window":  true,
	"New Tab":     true,
	"Open":        true,
	"Close":       true,
	"Save":        true,
}

// IsNoise reports whether a window is system chrome or a transient dialog
// rather than a user-facing content window. Empty-titled windows can never
// contain the " — " document marker, so they are always excluded.
func IsNoise(title string, width, height int) bool {
	return width == 0 ||
		height == 0 ||
		(width < 300 && height < 200) ||
		transientTitles[title] ||
		strings.Contains(title, "\n") ||
		(title == "" && width == height) ||
		(title == "" && !strings.Contains(title, " — "))
}

// SortForSelection orders records for presentation: non-empty titles first,
// lexicographically, with untitled windows last in their incoming order.
func SortForSelection(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		iEmpty := records[i].Title == ""
		jEmpty := records[j].Title == ""
		if iEmpty != jEmpty {
			return !iEmpty
		}
		return records[i].Title < records[j].Title
	})
}
