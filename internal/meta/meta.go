// Package meta extracts article metadata (author, date, kicker, source
// name) from the original page HTML. Candidates are gathered with scored
// XPath selector tables; higher scores reflect more trustworthy locations
// and win when several selectors match.
package meta

import (
	"sort"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// selectorScore pairs an XPath expression with a confidence score. When
// attr is set, the candidate value is that attribute of the matched
// element; otherwise it is the element's inner text.
type selectorScore struct {
	xpath string
	attr  string
	score int
}

// queryScored evaluates the selector table against doc and returns the
// distinct candidate strings in descending confidence order.
func queryScored(doc *html.Node, selectors []selectorScore) []string {
	type candidate struct {
		value string
		score int
	}

	var found []candidate
	seen := make(map[string]bool)
	for _, sel := range selectors {
		nodes, err := htmlquery.QueryAll(doc, sel.xpath)
		if err != nil {
			continue
		}
		for _, n := range nodes {
			var value string
			if sel.attr != "" {
				value = htmlquery.SelectAttr(n, sel.attr)
			} else {
				value = htmlquery.InnerText(n)
			}
			value = strings.TrimSpace(value)
			if value == "" || seen[value] {
				continue
			}
			seen[value] = true
			found = append(found, candidate{value, sel.score})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].score > found[j].score
	})

	values := make([]string, len(found))
	for i, c := range found {
		values[i] = c.value
	}
	return values
}

// Parse parses an HTML page for metadata extraction.
func Parse(pageHTML string) (*html.Node, error) {
	return htmlquery.Parse(strings.NewReader(pageHTML))
}
