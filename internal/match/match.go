// Package match finds candidate application names for a user query: exact
// casing variants first, then progressively looser ranked matching against
// the list of visible apps.
package match

import (
	"sort"
	"strings"
)

// Apps ranks the visible apps against a partial name query. Three tiers are
// tried in order and the first non-empty one wins:
//
//  1. case-insensitive equality, in enumeration order
//  2. substring matches, earliest occurrence then shortest name first
//  3. apps containing every whitespace-separated query word, shortest first
//
// Returns nil when no tier matches. Never fails.
func Apps(apps []string, query string) []string {
	q := strings.ToLower(query)

	var exact []string
	for _, app := range apps {
		if strings.ToLower(app) == q {
			exact = append(exact, app)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	type substringMatch struct {
		name string
		pos  int
	}
	var subs []substringMatch
	for _, app := range apps {
		if pos := strings.Index(strings.ToLower(app), q); pos >= 0 {
			subs = append(subs, substringMatch{name: app, pos: pos})
		}
	}
	if len(subs) > 0 {
		sort.SliceStable(subs, func(i, j int) bool {
			if subs[i].pos != subs[j].pos {
				return subs[i].pos < subs[j].pos
			}
			return len(subs[i].name) < len(subs[j].name)
		})
		names := make([]string, len(subs))
		for i, m := range subs {
			names[i] = m.name
		}
		return names
	}

	words := strings.Fields(q)
	var allWords []string
	for _, app := range apps {
		lower := strings.ToLower(app)
		matched := true
		for _, w := range words {
			if !strings.Contains(lower, w) {
				matched = false
				break
			}
		}
		if matched {
			allWords = append(allWords, app)
		}
	}
	sort.SliceStable(allWords, func(i, j int) bool {
		return len(allWords[i]) < len(allWords[j])
	})
	return allWords
}
