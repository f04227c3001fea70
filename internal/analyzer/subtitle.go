package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// subtitleClasses is the vocabulary of class names that explicitly mark a
// deck/standfirst element, in order of preference.
var subtitleClasses = []string{
	"subtitle", "deck", "standfirst", "dek", "subheadline", "excerpt",
}

// ExtractSubtitle finds a deck/standfirst string for the article header.
// It first looks for an element whose class matches the subtitle vocabulary,
// then falls back to the first two paragraphs when one of them reads like a
// summary. Returns the empty string when no candidate qualifies.
func ExtractSubtitle(doc *goquery.Document, title string) string {
	for _, name := range subtitleClasses {
		sel := firstByClassSubstring(doc, name)
		if sel == nil {
			continue
		}
		text := strings.TrimSpace(sel.Text())
		if text != "" && text != title && utf8.RuneCountInString(text) > 30 {
			return text
		}
	}

	// A good deck candidate is 80-300 characters and not a repeat of the
	// title. Only the first two paragraphs are considered.
	var subtitle string
	doc.Find("p").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= 2 {
			return false
		}
		text := strings.TrimSpace(s.Text())
		length := utf8.RuneCountInString(text)
		if text != "" && text != title && length > 80 && length < 300 {
			subtitle = text
			return false
		}
		return true
	})
	return subtitle
}

// firstByClassSubstring returns the first element whose class attribute
// contains name as a case-insensitive substring, or nil.
func firstByClassSubstring(doc *goquery.Document, name string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class := strings.ToLower(s.AttrOr("class", ""))
		if strings.Contains(class, name) {
			found = s
			return false
		}
		return true
	})
	return found
}
