// Package search implements the text predicate used to filter the displayed
// transaction list in budget reports. Matching is case-insensitive,
// diacritic-insensitive, and requires every query term to appear somewhere in
// the candidate text ("contains all terms" semantics).
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, so "café" and
// "cafe" normalize to the same string.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases s and strips diacritics.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Transform only fails on malformed input; fall back to the raw string.
		out = s
	}
	return strings.ToLower(out)
}

// Matcher matches candidate text against a fixed, pre-normalized query.
type Matcher struct {
	terms []string
}

// NewMatcher builds a Matcher from a free-text query. A query with no terms
// (empty or whitespace-only) yields a Matcher that matches everything.
func NewMatcher(query string) *Matcher {
	return &Matcher{terms: strings.Fields(Normalize(query))}
}

// Empty reports whether the matcher has no terms.
func (m *Matcher) Empty() bool {
	return len(m.terms) == 0
}

// Match reports whether every query term appears in at least one of the
// given fields.
func (m *Matcher) Match(fields ...string) bool {
	if m.Empty() {
		return true
	}

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Normalize(f))
	}
	haystack := b.String()

	for _, term := range m.terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}
