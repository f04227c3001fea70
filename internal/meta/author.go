package meta

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// authorSelectors locate author names, meta tags first.
var authorSelectors = []selectorScore{
	{xpath: "//meta[@property='article:author']", attr: "content", score: 10},
	{xpath: "//meta[@property='og:article:author']", attr: "content", score: 9},
	{xpath: "//meta[@name='author']", attr: "content", score: 8},
	{xpath: "//meta[@name='byl']", attr: "content", score: 6},
	{xpath: "//meta[@name='twitter:creator']", attr: "content", score: 5},
	{xpath: "//*[@itemprop='author']//*[@itemprop='name']", score: 4},
	{xpath: "//*[@itemprop='author']", score: 3},
	{xpath: "//a[@rel='author']", score: 2},
	{xpath: "//span[contains(@class,'author')]", score: 1},
	{xpath: "//p[contains(@class,'author')]", score: 1},
	{xpath: "//div[contains(@class,'author')]", score: 1},
	{xpath: "//span[contains(@class,'byline')]", score: 1},
	{xpath: "//p[contains(@class,'byline')]", score: 1},
}

var byPrefix = regexp.MustCompile(`(?i)^by\s+`)

// ExtractAuthor returns the article author, or "" when none is found.
// Byline prefixes like "By " are stripped; implausibly long candidates are
// rejected.
func ExtractAuthor(doc *html.Node) string {
	for _, candidate := range queryScored(doc, authorSelectors) {
		author := cleanAuthor(candidate)
		if author != "" && len(author) < 100 {
			return author
		}
	}
	return ""
}

func cleanAuthor(author string) string {
	author = strings.TrimSpace(byPrefix.ReplaceAllString(strings.TrimSpace(author), ""))
	for _, suffix := range []string{" | Author", " | Writer", " | Reporter", " | Staff"} {
		author = strings.TrimSuffix(author, suffix)
	}
	// Twitter creator handles are not byline names.
	if strings.HasPrefix(author, "@") {
		author = strings.TrimPrefix(author, "@")
	}
	return strings.TrimSpace(author)
}
