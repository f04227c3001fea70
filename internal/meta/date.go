package meta

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// dateSelectors locate publication dates, structured metadata first.
var dateSelectors = []selectorScore{
	{xpath: "//meta[@property='article:published_time']", attr: "content", score: 13},
	{xpath: "//meta[@property='og:article:published_time']", attr: "content", score: 10},
	{xpath: "//meta[@name='pubdate']", attr: "content", score: 10},
	{xpath: "//meta[@name='publishdate']", attr: "content", score: 10},
	{xpath: "//meta[@name='date']", attr: "content", score: 9},
	{xpath: "//meta[@property='article:published']", attr: "content", score: 7},
	{xpath: "//meta[@itemprop='datePublished']", attr: "content", score: 3},
	{xpath: "//*[@itemprop='datePublished']", attr: "content", score: 3},
	{xpath: "//time", attr: "datetime", score: 3},
	{xpath: "//time", score: 2},
	{xpath: "//span[contains(@class,'date')]", score: 2},
	{xpath: "//p[contains(@class,'date')]", score: 2},
	{xpath: "//div[contains(@class,'date')]", score: 2},
}

// dateLayouts covers the formats seen in the wild, ISO first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05.999Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02-01-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
}

// displayDateFormat is how dates appear in the composed byline.
const displayDateFormat = "January 2, 2006"

var timePortion = regexp.MustCompile(`T.*$`)

// ExtractDisplayDate returns the publication date formatted for display,
// or "" when no candidate parses. Candidates that cannot be parsed at all
// are returned as-is only when they come from a visible element, matching
// the behavior of showing whatever dateline the page showed.
func ExtractDisplayDate(doc *html.Node) string {
	candidates := queryScored(doc, dateSelectors)
	for _, candidate := range candidates {
		if t := ParseDate(candidate); !t.IsZero() {
			return t.Format(displayDateFormat)
		}
	}
	// Fall back to a short, plausible dateline string.
	for _, candidate := range candidates {
		if len(candidate) <= 40 && strings.ContainsAny(candidate, "0123456789") {
			return candidate
		}
	}
	return ""
}

// ParseDate parses a date string in any of the supported layouts,
// returning the zero time when nothing matches.
func ParseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Truncate(time.Second)
		}
	}

	// Retry with any time-of-day portion dropped; many pages emit
	// fractional or zone-mangled timestamps that still carry a clean date.
	if bare := timePortion.ReplaceAllString(value, ""); bare != value {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, bare); err == nil {
				return t.UTC().Truncate(time.Second)
			}
		}
	}

	return time.Time{}
}
