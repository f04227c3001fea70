// Package simplify provides text normalization and boilerplate removal for
// extracted article content.
package simplify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	keptControls  = map[rune]bool{'\t': true, '\n': true, '\r': true, '\f': true}
)

// NormalizeUnicode normalizes text to NFKC form for consistent character
// representation.
func NormalizeUnicode(text string) string {
	return norm.NFKC.String(text)
}

// CollapseWhitespace replaces runs of whitespace with a single space and
// trims the ends.
func CollapseWhitespace(text string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
}

// StripControlRunes removes Unicode control characters, retaining the
// whitespace characters that CollapseWhitespace knows how to fold.
func StripControlRunes(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !unicode.IsControl(r) || keptControls[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeText applies all normalization steps in the correct order.
func NormalizeText(text string) string {
	return CollapseWhitespace(NormalizeUnicode(StripControlRunes(text)))
}

// FlattenText extracts the visible text of a node tree with single spaces
// between text runs, normalized for word counting and display.
func FlattenText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return NormalizeText(b.String())
}
