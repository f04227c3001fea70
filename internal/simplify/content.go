package simplify

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// wholesaleBlacklist lists elements removed together with their content.
// These never carry article text.
var wholesaleBlacklist = strings.Join([]string{
	"script", "style", "noscript", "template", "iframe", "object", "embed",
	"form", "button", "input", "select", "textarea", "label",
	"nav", "aside", "header", "footer",
	"svg", "canvas", "video", "audio",
}, ", ")

// keptAttributes are the only attributes preserved on cleaned elements.
var keptAttributes = map[string]bool{
	"href":    true,
	"src":     true,
	"alt":     true,
	"class":   true,
	"colspan": true,
	"rowspan": true,
}

// CleanContentHTML strips boilerplate from a content-area selection and
// returns it as a self-contained block fragment wrapped in a div. The
// input selection is cloned first and never modified.
func CleanContentHTML(area *goquery.Selection) (string, error) {
	clone := area.Clone()

	clone.Find(wholesaleBlacklist).Remove()
	stripAttributes(clone)
	removeEmptyParagraphs(clone)

	inner, err := clone.Html()
	if err != nil {
		return "", fmt.Errorf("rendering cleaned content: %w", err)
	}
	return "<div>" + strings.TrimSpace(inner) + "</div>", nil
}

func stripAttributes(sel *goquery.Selection) {
	sel.Find("*").Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		kept := node.Attr[:0]
		for _, a := range node.Attr {
			if keptAttributes[a.Key] {
				kept = append(kept, a)
			}
		}
		node.Attr = kept
	})
}

// removeEmptyParagraphs drops paragraphs with no visible text, unless they
// carry an image.
func removeEmptyParagraphs(sel *goquery.Selection) {
	sel.Find("p").Each(func(_ int, s *goquery.Selection) {
		if NormalizeText(s.Text()) == "" && s.Find("img").Length() == 0 {
			s.Remove()
		}
	})
}
