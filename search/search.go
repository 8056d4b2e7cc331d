// Package search provides find/replace over a document snapshot.
//
// Matching is plain substring search, optionally case-insensitive; queries
// are never interpreted as patterns. Positions are byte offsets into the
// snapshot.
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is a half-open [Start, End) span within the searched text.
type Match struct {
	Start int
	End   int
}

// Find returns the first match of query at or after from. The second return
// is false when query is empty, from is past the end, or nothing matches.
// Case-insensitive matching uses Unicode simple folding, and spans always
// index the original text: folding never shifts reported offsets.
func Find(text, query string, caseSensitive bool, from int) (Match, bool) {
	if query == "" || from < 0 || from > len(text) {
		return Match{}, false
	}

	if caseSensitive {
		i := strings.Index(text[from:], query)
		if i < 0 {
			return Match{}, false
		}
		return Match{Start: from + i, End: from + i + len(query)}, true
	}

	for i := from; i < len(text); {
		if n, ok := foldPrefix(text[i:], query); ok {
			return Match{Start: i, End: i + n}, true
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return Match{}, false
}

// foldPrefix reports whether s starts with a case-fold of query, returning
// the byte length of the matching prefix in s. The length can differ from
// len(query) when the folded runes have different encodings.
func foldPrefix(s, query string) (int, bool) {
	n := 0
	for _, qr := range query {
		r, size := utf8.DecodeRuneInString(s[n:])
		if size == 0 || !foldEqual(r, qr) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// foldEqual matches strings.EqualFold's per-rune semantics.
func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// FindAll returns every non-overlapping match of query, in order.
func FindAll(text, query string, caseSensitive bool) []Match {
	var matches []Match
	pos := 0
	for {
		m, ok := Find(text, query, caseSensitive, pos)
		if !ok {
			return matches
		}
		matches = append(matches, m)
		pos = m.End
	}
}

// ReplaceAll replaces every non-overlapping match of query with replacement
// and reports how many were replaced. The input text is never modified.
func ReplaceAll(text, query, replacement string, caseSensitive bool) (string, int) {
	matches := FindAll(text, query, caseSensitive)
	if len(matches) == 0 {
		return text, 0
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m.Start])
		b.WriteString(replacement)
		last = m.End
	}
	b.WriteString(text[last:])
	return b.String(), len(matches)
}
