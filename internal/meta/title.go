package meta

import (
	"strings"

	"golang.org/x/net/html"
)

// titleSelectors locate the article headline, structured metadata first.
var titleSelectors = []selectorScore{
	{xpath: "//meta[@property='og:title']", attr: "content", score: 6},
	{xpath: "//meta[@name='twitter:title']", attr: "content", score: 5},
	{xpath: "//h1[@itemprop='headline']", score: 5},
	{xpath: "//h1[contains(@class,'entry-title')]", score: 4},
	{xpath: "//h1[contains(@class,'title')]", score: 3},
	{xpath: "//header//h1", score: 2},
	{xpath: "//h1", score: 2},
	{xpath: "//title", score: 1},
}

// ExtractTitle returns the article headline. Site-name suffixes are
// trimmed from <title>-derived candidates.
func ExtractTitle(doc *html.Node) string {
	for _, candidate := range queryScored(doc, titleSelectors) {
		if title := trimSiteName(candidate); title != "" {
			return title
		}
	}
	return ""
}

// trimSiteName drops a trailing "| Site Name" style segment.
func trimSiteName(title string) string {
	for _, sep := range titleSeparators {
		if idx := strings.Index(title, sep); idx > 0 {
			return strings.TrimSpace(title[:idx])
		}
	}
	return strings.TrimSpace(title)
}
