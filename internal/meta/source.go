package meta

import (
	"net/url"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleSeparators are the glyph runs publications use between the article
// title and the site name inside <title>.
var titleSeparators = []string{" | ", " - ", " — ", " :: ", " » "}

var titleCaser = cases.Title(language.English)

// ExtractSourceName returns the publication name: og:site_name when
// present, otherwise the trailing segment of the <title>, otherwise a
// prettified domain name.
func ExtractSourceName(doc *html.Node, sourceURL string) string {
	if node := htmlquery.FindOne(doc, "//meta[@property='og:site_name']"); node != nil {
		if name := strings.TrimSpace(htmlquery.SelectAttr(node, "content")); name != "" {
			return name
		}
	}

	if node := htmlquery.FindOne(doc, "//title"); node != nil {
		title := strings.TrimSpace(htmlquery.InnerText(node))
		for _, sep := range titleSeparators {
			if strings.Contains(title, sep) {
				parts := strings.Split(title, sep)
				// The site name is conventionally the last segment.
				return strings.TrimSpace(parts[len(parts)-1])
			}
		}
	}

	return domainName(sourceURL)
}

func domainName(sourceURL string) string {
	parsed, err := url.Parse(sourceURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	domain := strings.TrimPrefix(parsed.Hostname(), "www.")
	return titleCaser.String(strings.ReplaceAll(domain, ".", " "))
}
