package extract

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

var (
	contentClassPattern = regexp.MustCompile(`(?i)post-content|article-content|entry-content|post-body|article-body|story-body`)
	contentIDPattern    = regexp.MustCompile(`(?i)^(content|article|post|story)`)
)

// findContentArea picks the element most likely to hold the article body,
// trying semantic containers before class and id conventions. The whole
// document is the last resort; later cleanup copes with the extra noise.
func findContentArea(doc *goquery.Document) *goquery.Selection {
	if sel := doc.Find("article").First(); sel.Length() > 0 {
		return sel
	}

	if sel := firstMatchingAttr(doc, "class", contentClassPattern); sel != nil {
		return sel
	}
	if sel := firstMatchingAttr(doc, "id", contentIDPattern); sel != nil {
		return sel
	}

	if sel := doc.Find("main").First(); sel.Length() > 0 {
		return sel
	}
	if sel := doc.Find("body").First(); sel.Length() > 0 {
		return sel
	}
	return doc.Selection
}

func firstMatchingAttr(doc *goquery.Document, attr string, pattern *regexp.Regexp) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("div, section").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if pattern.MatchString(s.AttrOr(attr, "")) {
			found = s
			return false
		}
		return true
	})
	return found
}
