package interpreter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ============================================================================
// TEXT NORMALIZER — Canonical form for all matching
// ============================================================================
// Every comparison in the interpreter happens on normalized text: diacritics
// stripped, lowercased, trimmed. Internal whitespace is preserved so multi-
// word project names keep their shape.
// ============================================================================

// stripMarks decomposes to NFD, drops combining marks (category Mn), and
// recomposes. "Bürdeos" → "Burdeos".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes text for matching: diacritics removed, lowercased,
// leading/trailing whitespace trimmed. Pure and total — any input, including
// the empty string, yields a result. Idempotent: Normalize(Normalize(s)) ==
// Normalize(s).
func Normalize(text string) string {
	stripped, _, err := transform.String(stripMarks, text)
	if err != nil {
		// Malformed UTF-8 only; fall back to the raw text so matching
		// still degrades instead of failing.
		stripped = text
	}
	return strings.TrimSpace(strings.ToLower(stripped))
}
