package interpreter

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/obralens/obralens/engine"
)

// ============================================================================
// PROJECT INDEX — normalized name → canonical name
// ============================================================================
// Built once from the union of all distinct project values across every
// dataset that carries the project column. Immutable after construction.
//
// Resolution is two-pass, longest key first within each pass:
//   Pass 1: word-boundary match — the key must not sit inside a larger token
//           (project "Mar" must not match inside "Marval").
//   Pass 2: plain substring fallback — recovers mentions glued to
//           punctuation or abbreviations, at lower confidence.
// ============================================================================

// ProjectIndex maps normalized project names to their canonical (as-entered)
// form.
type ProjectIndex struct {
	byNorm map[string]string
	keys   []string // normalized keys, longest first
}

// BuildProjectIndex scans each view's project dimension and indexes every
// distinct value. When two distinct originals normalize identically the
// later one wins (dataset order, then row order).
func BuildProjectIndex(projectKey string, views ...engine.RecordView) *ProjectIndex {
	idx := &ProjectIndex{byNorm: make(map[string]string)}

	for _, view := range views {
		if view == nil {
			continue
		}
		for i := 0; i < view.Len(); i++ {
			original := view.Dimension(i, projectKey)
			if original == "" {
				continue
			}
			key := Normalize(original)
			if key == "" {
				continue
			}
			if _, seen := idx.byNorm[key]; !seen {
				idx.keys = append(idx.keys, key)
			}
			idx.byNorm[key] = original
		}
	}

	// Longest first so multi-word names beat their prefixes; lexical
	// tiebreak keeps resolution deterministic.
	sort.Slice(idx.keys, func(i, j int) bool {
		if len(idx.keys[i]) != len(idx.keys[j]) {
			return len(idx.keys[i]) > len(idx.keys[j])
		}
		return idx.keys[i] < idx.keys[j]
	})

	return idx
}

// Len returns the number of indexed projects.
func (idx *ProjectIndex) Len() int { return len(idx.keys) }

// Names returns the canonical project names in alphabetical order.
func (idx *ProjectIndex) Names() []string {
	names := make([]string, 0, len(idx.keys))
	for _, key := range idx.keys {
		names = append(names, idx.byNorm[key])
	}
	sort.Strings(names)
	return names
}

// Canonical returns the canonical form for a normalized key, if indexed.
func (idx *ProjectIndex) Canonical(norm string) (string, bool) {
	canonical, ok := idx.byNorm[norm]
	return canonical, ok
}

// Resolve finds a project mention inside normalized query text. It returns
// the canonical name and the normalized key that matched, or ("", "") when
// no project is mentioned.
func (idx *ProjectIndex) Resolve(normalizedQuery string) (canonical, normMatch string) {
	if normalizedQuery == "" {
		return "", ""
	}

	// Pass 1: word-boundary matches only.
	for _, key := range idx.keys {
		if containsBounded(normalizedQuery, key) {
			return idx.byNorm[key], key
		}
	}

	// Pass 2: permissive substring fallback.
	for _, key := range idx.keys {
		if strings.Contains(normalizedQuery, key) {
			return idx.byNorm[key], key
		}
	}

	return "", ""
}

// containsBounded reports whether key occurs in text flanked by non-word
// runes or string edges.
func containsBounded(text, key string) bool {
	if key == "" {
		return false
	}
	for start := 0; start+len(key) <= len(text); {
		i := strings.Index(text[start:], key)
		if i < 0 {
			return false
		}
		i += start
		if boundedAt(text, i, len(key)) {
			return true
		}
		start = i + 1
	}
	return false
}

// boundedAt checks that the match at [i, i+n) does not sit inside a larger
// token: the adjacent runes must not be letters or digits.
func boundedAt(text string, i, n int) bool {
	if i > 0 {
		before, _ := utf8.DecodeLastRuneInString(text[:i])
		if unicode.IsLetter(before) || unicode.IsDigit(before) {
			return false
		}
	}
	if i+n < len(text) {
		after, _ := utf8.DecodeRuneInString(text[i+n:])
		if unicode.IsLetter(after) || unicode.IsDigit(after) {
			return false
		}
	}
	return true
}
