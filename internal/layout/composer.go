// Package layout assembles the final article document from analyzed
// content. The composer is a pure function: it reads the source block
// structure, clones what it keeps, and interleaves synthesized figures and
// pull quotes into a freshly built tree. The source tree is never mutated
// and composing twice yields structurally equal output.
package layout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pagefold/pagefold/types"
)

// blockElements selects the block-level elements carried into the composed
// body, in document order. This is the same block granularity the analyzer
// indexes paragraphs against.
const blockElements = "p, h1, h2, h3, h4, h5, h6, blockquote, ul, ol, figure, pre"

// Compose builds the composed article document: header, interleaved body,
// and optional footer. Unrecognized options are rejected up front; after
// that composition cannot fail except on unparseable content.
func Compose(content *types.AnalyzedContent, options types.LayoutOptions) (*types.Document, error) {
	if err := options.Normalize(); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTMLContent))
	if err != nil {
		return nil, fmt.Errorf("parsing article content: %w", err)
	}

	root := newElement("article", attr("class", "article"))
	if options.Style == types.StyleMinimal {
		appendClass(root, "minimal")
	}

	root.AppendChild(buildHeader(content))
	root.AppendChild(composeBody(doc, content, options))
	if options.IncludeHeaderFooter && (content.SourceName != "" || content.SourceURL != "") {
		root.AppendChild(buildFooter(content))
	}

	return types.NewDocument(root, options), nil
}

// buildHeader assembles kicker, headline, deck, and byline. Absent fields
// are omitted; an empty byline is dropped entirely.
func buildHeader(content *types.AnalyzedContent) *html.Node {
	header := newElement("header", attr("class", "article-header"))

	if content.Kicker != "" {
		kicker := newElement("p", attr("class", "kicker"))
		kicker.AppendChild(newText(content.Kicker))
		header.AppendChild(kicker)
	}

	headline := newElement("h1", attr("class", "headline"))
	headline.AppendChild(newText(content.Title))
	header.AppendChild(headline)

	if content.Subtitle != "" {
		deck := newElement("p", attr("class", "deck"))
		deck.AppendChild(newText(content.Subtitle))
		header.AppendChild(deck)
	}

	var parts []string
	if content.Author != "" {
		parts = append(parts, "By "+content.Author)
	}
	if content.Date != "" {
		parts = append(parts, content.Date)
	}
	if content.ReadingTimeMinutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min read", content.ReadingTimeMinutes))
	}
	if len(parts) > 0 {
		byline := newElement("p", attr("class", "byline"))
		byline.AppendChild(newText(strings.Join(parts, " · ")))
		header.AppendChild(byline)
	}

	return header
}

func composeBody(doc *goquery.Document, content *types.AnalyzedContent, options types.LayoutOptions) *html.Node {
	body := newElement("div", attr("class", "article-body"))

	// Group non-hero placements and quotes by target paragraph index.
	var hero *types.ImagePlacement
	imageGroups := make(map[int][]*types.ImagePlacement)
	for _, placement := range content.ImagePlacements {
		if placement.Type == types.PlacementHero {
			hero = placement
			continue
		}
		imageGroups[placement.ParagraphIndex] = append(imageGroups[placement.ParagraphIndex], placement)
	}
	quotes := make(map[int]types.PullQuote, len(content.PullQuotes))
	for _, quote := range content.PullQuotes {
		quotes[quote.ParagraphIndex] = quote
	}

	// The hero leads the body, before any text.
	if options.IncludeImages && hero != nil {
		body.AppendChild(buildFigure(hero))
	}

	paraCount := 0
	insertedQuotes := make(map[int]bool)

	doc.Find(blockElements).Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)

		if name == "p" && !hasVisibleText(s.Text()) {
			return
		}
		// Source figures are dropped; figures are re-synthesized from the
		// placement plan instead.
		if name == "figure" {
			return
		}

		clone := cloneTree(s.Get(0))

		if paraCount == 0 && name == "p" && options.IncludeDropCap {
			appendClass(clone, "drop-cap")
		}
		if isHeading(name) {
			appendClass(clone, "section-heading")
		}

		// Figures and quotes attach to paragraphs, not to other blocks that
		// happen to share the current index.
		if options.IncludeImages && name == "p" {
			for _, placement := range imageGroups[paraCount] {
				body.AppendChild(buildFigure(placement))
			}
		}

		body.AppendChild(clone)

		if options.IncludePullQuotes && name == "p" && !insertedQuotes[paraCount] {
			if quote, ok := quotes[paraCount]; ok {
				body.AppendChild(buildPullQuote(quote))
				insertedQuotes[paraCount] = true
			}
		}

		// Only paragraphs advance the shared coordinate system.
		if name == "p" {
			paraCount++
		}
	})

	// Placements targeted past the last paragraph still render, trailing.
	if options.IncludeImages {
		var overflow []int
		for index := range imageGroups {
			if index >= paraCount {
				overflow = append(overflow, index)
			}
		}
		sort.Ints(overflow)
		for _, index := range overflow {
			for _, placement := range imageGroups[index] {
				body.AppendChild(buildFigure(placement))
			}
		}
	}

	return body
}

func buildFooter(content *types.AnalyzedContent) *html.Node {
	footer := newElement("footer", attr("class", "article-footer"))
	credit := newElement("p", attr("class", "source-credit"))
	credit.AppendChild(newText("Originally published at "))

	name := content.SourceName
	if name == "" {
		name = content.SourceURL
	}
	if content.SourceURL != "" {
		link := newElement("a", attr("href", content.SourceURL))
		link.AppendChild(newText(name))
		credit.AppendChild(link)
	} else {
		credit.AppendChild(newText(name))
	}

	footer.AppendChild(credit)
	return footer
}
