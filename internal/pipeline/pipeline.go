// Package pipeline runs the window discovery flow: name variants against
// the enumerator, fuzzy app matching on a miss, then descriptor parsing,
// noise filtering, and selection ordering.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/mj1618/screencap/internal/match"
	"github.com/mj1618/screencap/internal/platform"
	"github.com/mj1618/screencap/internal/window"
)

// The failure modes a resolve can end in. "No windows" and "all filtered"
// are distinct so callers can tell "nothing exists" from "everything the
// app has is UI noise".
var (
	ErrNoVisibleApps  = errors.New("no visible applications found")
	ErrNoMatchingApps = errors.New("no matching applications found")
	ErrNoWindows      = errors.New("no windows found to capture")
	ErrAllFiltered    = errors.New("no valid windows found after filtering")
)

// rawWindow pairs a descriptor line with the app name it was enumerated
// under.
type rawWindow struct {
	app        string
	descriptor string
}

// Resolve finds the selectable windows for query: every returned record has
// passed the noise filter and the result is in selection order. Fails with
// one of the sentinel errors above.
func Resolve(p *platform.Provider, query string, sink Sink) ([]window.Record, error) {
	visible, err := p.AppLister.VisibleApps()
	if err != nil {
		sink.Printf("Error getting visible applications: %v\n", err)
		return nil, ErrNoVisibleApps
	}
	if len(visible) == 0 {
		return nil, ErrNoVisibleApps
	}

	sink.Printf("=== Checking windows for %q ===\n", query)

	var raw []rawWindow
	if descriptors := enumerate(p.Enumerator, query, sink); len(descriptors) > 0 {
		sink.Printf("Found windows for %q\n", query)
		for _, d := range descriptors {
			raw = append(raw, rawWindow{app: query, descriptor: d})
		}
	} else {
		matched := match.Apps(visible, query)
		if len(matched) == 0 {
			return nil, fmt.Errorf("%w for %q", ErrNoMatchingApps, query)
		}
		sink.Printf("Found matching applications for %q:\n", query)
		for _, app := range matched {
			sink.Printf("  %s\n", app)
			for _, d := range enumerate(p.Enumerator, app, sink) {
				raw = append(raw, rawWindow{app: app, descriptor: d})
			}
		}
	}

	if len(raw) == 0 {
		return nil, ErrNoWindows
	}

	var records []window.Record
	for _, rw := range raw {
		rec, err := window.Parse(rw.descriptor)
		if err != nil {
			// One bad descriptor never aborts the batch.
			continue
		}
		if window.IsNoise(rec.Title, rec.Width, rec.Height) {
			continue
		}
		rec.App = rw.app
		records = append(records, *rec)
	}
	if len(records) == 0 {
		return nil, ErrAllFiltered
	}

	window.SortForSelection(records)
	return records, nil
}

// enumerate tries each casing variant of name in order and returns the
// first non-empty descriptor list. Enumerator errors fall through to the
// next variant.
func enumerate(enum platform.Enumerator, name string, sink Sink) []string {
	for _, variant := range match.Variants(name) {
		sink.Printf("Trying application name: %q\n", variant)
		descriptors, err := enum.ListWindows(variant)
		if err != nil {
			continue
		}
		if len(descriptors) > 0 {
			sink.Printf("Found windows:\n")
			for _, d := range descriptors {
				sink.Printf("%s\n", d)
			}
			return descriptors
		}
	}
	return nil
}
