package analyzer

import (
	"iter"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// sentenceBoundary matches a sentence-ending punctuation mark followed by
// whitespace. The split is only confirmed when an upper-case letter follows,
// which keeps abbreviations like "e.g. something" in one piece.
var sentenceBoundary = regexp.MustCompile(`[.!?](\s+)`)

// Sentences returns a lazy, restartable sequence of trimmed sentence-like
// units from text. This is a heuristic boundary detector, not a grammatical
// parser: text with no boundaries yields the whole text as a single unit,
// and empty fragments are dropped.
func Sentences(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := 0
		for _, m := range sentenceBoundary.FindAllStringSubmatchIndex(text, -1) {
			// m[2]:m[3] is the whitespace run after the punctuation mark.
			if m[3] >= len(text) {
				continue
			}
			r, _ := utf8.DecodeRuneInString(text[m[3]:])
			if !unicode.IsUpper(r) {
				continue
			}
			if s := strings.TrimSpace(text[start:m[2]]); s != "" {
				if !yield(s) {
					return
				}
			}
			start = m[3]
		}
		if s := strings.TrimSpace(text[start:]); s != "" {
			yield(s)
		}
	}
}

// SplitSentences collects the sentence sequence for text into a slice.
func SplitSentences(text string) []string {
	return slices.Collect(Sentences(text))
}
