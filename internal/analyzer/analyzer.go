// Package analyzer turns extracted article content into an editorial
// analysis: a subtitle, a spaced set of pull quotes, and an image placement
// plan. All of it is pure computation over already-resident data; nothing
// here performs I/O or mutates its input.
package analyzer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pagefold/pagefold/types"
)

// blockElements selects the block-level elements the layout stage walks.
const blockElements = "p, h1, h2, h3, h4, h5, h6, blockquote, ul, ol, figure, pre"

// Analyze derives an AnalyzedContent from extracted content. numQuotes is
// the desired number of pull quotes; zero disables quote selection and a
// negative value is a caller error. The other failure mode is content with
// no block-level structure at all; malformed-but-parseable input degrades
// gracefully instead (missing subtitle, fewer quotes, empty placements).
func Analyze(content *types.ExtractedContent, numQuotes int) (*types.AnalyzedContent, error) {
	if numQuotes < 0 {
		return nil, fmt.Errorf("pull quote count must not be negative, got %d", numQuotes)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTMLContent))
	if err != nil {
		return nil, fmt.Errorf("parsing article content: %w", err)
	}
	if doc.Find(blockElements).Length() == 0 {
		return nil, errors.New("article content has no block-level structure")
	}

	subtitle := ExtractSubtitle(doc, content.Title)
	pullQuotes := SelectPullQuotes(doc, numQuotes)
	paragraphCount := doc.Find("p").Length()
	placements := PlanImagePlacements(content.Images, paragraphCount)

	return &types.AnalyzedContent{
		Title:              content.Title,
		Subtitle:           subtitle,
		Author:             content.Author,
		Date:               content.Date,
		Kicker:             content.Kicker,
		SourceName:         content.SourceName,
		SourceURL:          content.SourceURL,
		HTMLContent:        content.HTMLContent,
		PullQuotes:         pullQuotes,
		ImagePlacements:    placements,
		WordCount:          content.WordCount(),
		ReadingTimeMinutes: content.ReadingTimeMinutes(),
		ParagraphCount:     paragraphCount,
	}, nil
}
