// Package stats derives document statistics from a text snapshot.
//
// Every function is a pure, single-pass computation over the string it is
// given. Callers grab one snapshot of the document and query it; nothing is
// cached between calls.
package stats

import (
	"fmt"
	"strings"
)

const (
	// WordsPerPage is the default page-estimate divisor.
	WordsPerPage = 500
	// WordsPerMinute is the default reading-speed divisor.
	WordsPerMinute = 200
)

// Statistics holds every metric derived from a single snapshot.
type Statistics struct {
	WordCount              int
	CharacterCount         int
	CharacterCountNoSpaces int
	LineCount              int
	ParagraphCount         int
	SentenceCount          int
	PageCount              int
	ReadingTimeMinutes     float64
}

// WordCount counts maximal non-whitespace runs. Empty or whitespace-only
// text yields 0.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharacterCount counts code points. When includeSpaces is false only the
// literal space character (U+0020) is stripped, not tabs or newlines.
func CharacterCount(text string, includeSpaces bool) int {
	if !includeSpaces {
		text = strings.ReplaceAll(text, " ", "")
	}
	return len([]rune(text))
}

// LineCount is the number of newline-delimited segments: count('\n') + 1,
// so even empty text is one line.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// ParagraphCount splits on blank-line separators and counts non-empty
// trimmed segments, never reporting fewer than 1.
func ParagraphCount(text string) int {
	n := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return max(1, n)
}

// SentenceCount approximates sentences by normalizing '!' and '?' to '.'
// and counting non-empty trimmed segments, never fewer than 1. It
// undercounts abbreviations and overcounts decimal numbers; that is the
// documented behavior, not a defect.
func SentenceCount(text string) int {
	text = strings.ReplaceAll(text, "!", ".")
	text = strings.ReplaceAll(text, "?", ".")
	n := 0
	for _, s := range strings.Split(text, ".") {
		if strings.TrimSpace(s) != "" {
			n++
		}
	}
	return max(1, n)
}

// EstimatePageCount is the ceiling of WordCount/wordsPerPage, minimum 1.
func EstimatePageCount(text string, wordsPerPage int) int {
	words := WordCount(text)
	return max(1, (words+wordsPerPage-1)/wordsPerPage)
}

// EstimateReadingTime returns WordCount/wordsPerMinute in minutes,
// without flooring.
func EstimateReadingTime(text string, wordsPerMinute int) float64 {
	return float64(WordCount(text)) / float64(wordsPerMinute)
}

// Report computes every statistic from one snapshot. All fields describe
// the same text; page and reading-time estimates use the package defaults.
func Report(text string) Statistics {
	return Statistics{
		WordCount:              WordCount(text),
		CharacterCount:         CharacterCount(text, true),
		CharacterCountNoSpaces: CharacterCount(text, false),
		LineCount:              LineCount(text),
		ParagraphCount:         ParagraphCount(text),
		SentenceCount:          SentenceCount(text),
		PageCount:              EstimatePageCount(text, WordsPerPage),
		ReadingTimeMinutes:     EstimateReadingTime(text, WordsPerMinute),
	}
}

// FormatReadingTime renders minutes as a human-readable duration in three
// bands: seconds under one minute, minutes (with a seconds remainder) under
// an hour, hours (with a minutes remainder) above. Exactly 60 minutes
// renders as "1 hours"; the label is never pluralized differently, matching
// the historical output downstream consumers compare against.
func FormatReadingTime(minutes float64) string {
	if minutes < 1 {
		return fmt.Sprintf("%d seconds", int(minutes*60))
	}
	if minutes < 60 {
		m := int(minutes)
		s := int((minutes - float64(m)) * 60)
		if s > 0 {
			return fmt.Sprintf("%d minutes, %d seconds", m, s)
		}
		return fmt.Sprintf("%d minutes", m)
	}
	h := int(minutes / 60)
	m := int(minutes) % 60
	if m > 0 {
		return fmt.Sprintf("%d hours, %d minutes", h, m)
	}
	return fmt.Sprintf("%d hours", h)
}
