package meta

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// kickerSelectors locate the category/topic label shown above the headline.
var kickerSelectors = []selectorScore{
	{xpath: "//meta[@property='article:section']", attr: "content", score: 5},
	{xpath: "//meta[@name='category']", attr: "content", score: 4},
	{xpath: "//*[contains(@class,'kicker')]", score: 2},
	{xpath: "//*[contains(@class,'category')]", score: 1},
	{xpath: "//*[contains(@class,'section-')]", score: 1},
	{xpath: "//*[contains(@class,'topic')]", score: 1},
}

// ExtractKicker returns the category label, upper-cased for display, or "".
func ExtractKicker(doc *html.Node) string {
	for _, candidate := range queryScored(doc, kickerSelectors) {
		if utf8.RuneCountInString(candidate) < 50 {
			return strings.ToUpper(candidate)
		}
	}
	return ""
}
