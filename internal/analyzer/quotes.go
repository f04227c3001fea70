package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/pagefold/pagefold/types"
)

// Word count bounds for a usable pull quote.
const (
	minQuoteWords = 8
	maxQuoteWords = 35
)

// minQuoteSpacing is the minimum distance, in paragraphs, between two
// selected pull quotes.
const minQuoteSpacing = 8

// quoteIndicator pairs a phrase pattern with its score contribution. The
// table is data, not logic, so a locale swap does not touch the scorer.
type quoteIndicator struct {
	pattern *regexp.Regexp
	weight  float64
}

// quoteIndicators lists phrases that tend to mark an emphatic, quotable
// sentence.
var quoteIndicators = []quoteIndicator{
	{regexp.MustCompile(`(?i)\bthe most\b`), 1.5},
	{regexp.MustCompile(`(?i)\bwhat (this|it) (means|implies|suggests)\b`), 1.5},
	{regexp.MustCompile(`(?i)\bthe (real|true|key|fundamental)\b`), 1.5},
	{regexp.MustCompile(`(?i)\b(striking|remarkable|surprising|fascinating)\b`), 1.5},
	{regexp.MustCompile(`(?i)\b(ultimately|fundamentally|essentially)\b`), 1.5},
	{regexp.MustCompile(`(?i)\bit('s| is) (not|clear|important|worth)\b`), 1.5},
	{regexp.MustCompile(`(?i)\bthe question is\b`), 1.5},
	{regexp.MustCompile(`(?i)\bif you (think|believe|consider)\b`), 1.5},
	{regexp.MustCompile(`(?i)\bthis is (why|how|what)\b`), 1.5},
	{regexp.MustCompile(`(?i)\bthe (problem|answer|solution|truth) is\b`), 1.5},
}

// weakOpeners are connectives that make a sentence read as a continuation
// rather than a standalone statement.
var weakOpeners = []string{"but ", "and ", "so ", "however,", "also "}

var numberToken = regexp.MustCompile(`\d+`)

// SelectPullQuotes scores every sentence outside the lede and greedily
// selects up to numQuotes of the highest-scoring candidates, keeping them at
// least minQuoteSpacing paragraphs apart. The result is ordered by position
// in the article and may be shorter than numQuotes when too few qualifying
// candidates exist.
func SelectPullQuotes(doc *goquery.Document, numQuotes int) []types.PullQuote {
	if numQuotes <= 0 {
		return nil
	}

	var candidates []types.PullQuote
	doc.Find("p").Each(func(paraIdx int, p *goquery.Selection) {
		// Let the lede breathe.
		if paraIdx < 2 {
			return
		}
		text := strings.TrimSpace(p.Text())
		if text == "" || utf8.RuneCountInString(text) < 50 {
			return
		}
		for sentence := range Sentences(text) {
			if score := ScorePullQuote(sentence); score > 0 {
				candidates = append(candidates, types.PullQuote{
					Text:           sentence,
					Score:          score,
					ParagraphIndex: paraIdx,
				})
			}
		}
	})

	// Highest score first; stable so equal scores keep discovery order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	var selected []types.PullQuote
	used := make(map[int]bool)
	for _, candidate := range candidates {
		if len(selected) >= numQuotes {
			break
		}
		tooClose := false
		for pos := range used {
			if abs(candidate.ParagraphIndex-pos) < minQuoteSpacing {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		selected = append(selected, candidate)
		used[candidate.ParagraphIndex] = true
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].ParagraphIndex < selected[j].ParagraphIndex
	})
	return selected
}

// ScorePullQuote rates a sentence's suitability as a pull quote. A score of
// zero or below means the sentence is rejected.
func ScorePullQuote(sentence string) float64 {
	wordCount := len(strings.Fields(sentence))
	if wordCount < minQuoteWords || wordCount > maxQuoteWords {
		return 0
	}

	score := 0.0

	// Medium-length quotes read best when set large.
	switch {
	case wordCount >= 12 && wordCount <= 25:
		score += 2.0
	case wordCount >= 10 && wordCount <= 30:
		score += 1.0
	}

	for _, indicator := range quoteIndicators {
		if indicator.pattern.MatchString(sentence) {
			score += indicator.weight
		}
	}

	// Questions engage the reader.
	if strings.HasSuffix(sentence, "?") {
		score += 1.0
	}
	if strings.Contains(sentence, `"`) {
		score += 0.5
	}

	lower := strings.ToLower(sentence)
	for _, opener := range weakOpeners {
		if strings.HasPrefix(lower, opener) {
			score -= 0.5
			break
		}
	}

	// Data-heavy sentences make poor display copy.
	if len(numberToken.FindAllString(sentence, -1)) > 2 {
		score -= 1.0
	}
	if strings.Contains(lower, "http") || strings.Contains(sentence, "@") {
		score -= 2.0
	}

	return score
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
