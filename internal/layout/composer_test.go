package layout

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/pagefold/pagefold/types"
)

const sampleBody = `<p>First paragraph opens the article with a reasonable amount of text.</p>` +
	`<h2>A Section</h2>` +
	`<p>Second paragraph follows the heading and keeps the story moving.</p>` +
	`<p>  </p>` +
	`<p>Third paragraph closes things out before the list arrives.</p>` +
	`<figure><img src="original.jpg"></figure>` +
	`<ul><li>one item</li></ul>`

func sampleContent() *types.AnalyzedContent {
	hero := types.Image{DataURI: "data:image/jpeg;base64,hero", Width: 1200, Height: 800}
	mid := types.Image{DataURI: "data:image/jpeg;base64,mid", Width: 1000, Height: 700, Caption: "A mid-article view"}
	left := types.Image{DataURI: "data:image/jpeg;base64,left", Width: 600, Height: 900}
	right := types.Image{DataURI: "data:image/jpeg;base64,right", Width: 600, Height: 900}

	pairLead := &types.ImagePlacement{Image: &left, Type: types.PlacementPaired, ParagraphIndex: 2}
	pairPartner := &types.ImagePlacement{Image: &right, Type: types.PlacementPaired, ParagraphIndex: 2}
	pairLead.PairWith = pairPartner
	pairPartner.PairWith = pairLead

	return &types.AnalyzedContent{
		Title:       "The Slow Leak",
		Subtitle:    "How a city lost track of its own water.",
		Author:      "Jordan Reyes",
		Date:        "March 4, 2024",
		Kicker:      "INFRASTRUCTURE",
		SourceName:  "The Record",
		SourceURL:   "https://example.com/slow-leak",
		HTMLContent: sampleBody,
		PullQuotes: []types.PullQuote{
			{Text: "The problem is that nobody ever reads the fine print.", Score: 3.5, ParagraphIndex: 1},
		},
		ImagePlacements: []*types.ImagePlacement{
			{Image: &hero, Type: types.PlacementHero, ParagraphIndex: 0},
			{Image: &mid, Type: types.PlacementCentered, ParagraphIndex: 1},
			pairLead,
		},
		WordCount:          600,
		ReadingTimeMinutes: 3,
		ParagraphCount:     4,
	}
}

func composeDoc(t *testing.T, content *types.AnalyzedContent, options types.LayoutOptions) *goquery.Document {
	t.Helper()
	doc, err := Compose(content, options)
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	rendered, err := doc.HTML()
	if err != nil {
		t.Fatalf("rendering composed document: %v", err)
	}
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(rendered))
	if err != nil {
		t.Fatalf("reparsing composed document: %v", err)
	}
	return parsed
}

func TestComposeStructure(t *testing.T) {
	doc := composeDoc(t, sampleContent(), types.DefaultLayoutOptions())

	body := doc.Find(".article-body")
	if body.Length() != 1 {
		t.Fatal("expected exactly one article body")
	}

	type child struct {
		tag   string
		class string
	}
	var got []child
	body.Children().Each(func(_ int, s *goquery.Selection) {
		got = append(got, child{goquery.NodeName(s), s.AttrOr("class", "")})
	})

	want := []child{
		{"figure", "figure hero"},
		{"p", "drop-cap"},
		{"h2", "section-heading"},
		{"figure", "figure centered"},
		{"p", ""},
		{"aside", "pull-quote"},
		{"div", "figure-pair"},
		{"p", ""},
		{"ul", ""},
	}
	if len(got) != len(want) {
		t.Fatalf("body children = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestComposeHeader(t *testing.T) {
	doc := composeDoc(t, sampleContent(), types.DefaultLayoutOptions())

	if got := doc.Find("header .headline").Text(); got != "The Slow Leak" {
		t.Errorf("headline = %q", got)
	}
	if got := doc.Find("header .kicker").Text(); got != "INFRASTRUCTURE" {
		t.Errorf("kicker = %q", got)
	}
	if got := doc.Find("header .deck").Text(); got != "How a city lost track of its own water." {
		t.Errorf("deck = %q", got)
	}
	if got := doc.Find("header .byline").Text(); got != "By Jordan Reyes · March 4, 2024 · 3 min read" {
		t.Errorf("byline = %q", got)
	}
}

func TestComposeHeaderOmitsAbsentFields(t *testing.T) {
	content := sampleContent()
	content.Author = ""
	content.Kicker = ""
	content.Subtitle = ""
	doc := composeDoc(t, content, types.DefaultLayoutOptions())

	if doc.Find("header .kicker").Length() != 0 {
		t.Error("kicker should be omitted")
	}
	if doc.Find("header .deck").Length() != 0 {
		t.Error("deck should be omitted")
	}
	if got := doc.Find("header .byline").Text(); got != "March 4, 2024 · 3 min read" {
		t.Errorf("byline = %q", got)
	}
}

func TestComposeWithoutImages(t *testing.T) {
	options := types.DefaultLayoutOptions()
	options.IncludeImages = false
	doc := composeDoc(t, sampleContent(), options)

	if n := doc.Find("figure").Length(); n != 0 {
		t.Errorf("expected no figures, got %d", n)
	}
	if n := doc.Find("img").Length(); n != 0 {
		t.Errorf("expected no images, got %d", n)
	}
	if n := doc.Find(".article-body p").Length(); n != 3 {
		t.Errorf("expected 3 paragraphs, got %d", n)
	}
}

func TestComposeWithoutPullQuotes(t *testing.T) {
	options := types.DefaultLayoutOptions()
	options.IncludePullQuotes = false
	doc := composeDoc(t, sampleContent(), options)

	if n := doc.Find(".pull-quote").Length(); n != 0 {
		t.Errorf("expected no pull quotes, got %d", n)
	}
}

func TestComposeWithoutDropCap(t *testing.T) {
	options := types.DefaultLayoutOptions()
	options.IncludeDropCap = false
	doc := composeDoc(t, sampleContent(), options)

	if n := doc.Find(".drop-cap").Length(); n != 0 {
		t.Errorf("expected no drop cap, got %d", n)
	}
}

func TestComposeFooter(t *testing.T) {
	doc := composeDoc(t, sampleContent(), types.DefaultLayoutOptions())

	link := doc.Find("footer.article-footer a")
	if link.Length() != 1 {
		t.Fatal("expected a source link in the footer")
	}
	if href := link.AttrOr("href", ""); href != "https://example.com/slow-leak" {
		t.Errorf("footer link href = %q", href)
	}
	if got := link.Text(); got != "The Record" {
		t.Errorf("footer link text = %q", got)
	}
}

func TestComposeFooterDisabled(t *testing.T) {
	options := types.DefaultLayoutOptions()
	options.IncludeHeaderFooter = false
	doc := composeDoc(t, sampleContent(), options)

	if doc.Find("footer").Length() != 0 {
		t.Error("expected no footer")
	}
}

func TestComposeFooterOmittedWithoutSource(t *testing.T) {
	content := sampleContent()
	content.SourceName = ""
	content.SourceURL = ""
	doc := composeDoc(t, content, types.DefaultLayoutOptions())

	if doc.Find("footer").Length() != 0 {
		t.Error("expected no footer without a source")
	}
}

func TestComposeMinimalStyle(t *testing.T) {
	options := types.DefaultLayoutOptions()
	options.Style = types.StyleMinimal
	doc := composeDoc(t, sampleContent(), options)

	if !doc.Find("article").HasClass("minimal") {
		t.Error("expected minimal class on the article root")
	}
}

func TestComposeRejectsUnknownStyle(t *testing.T) {
	options := types.DefaultLayoutOptions()
	options.Style = "brutalist"
	if _, err := Compose(sampleContent(), options); err == nil {
		t.Fatal("expected error for unknown style")
	}
}

func TestComposePairedFigures(t *testing.T) {
	doc := composeDoc(t, sampleContent(), types.DefaultLayoutOptions())

	pair := doc.Find(".figure-pair")
	if pair.Length() != 1 {
		t.Fatalf("expected one figure pair, got %d", pair.Length())
	}
	if n := pair.Find("figure").Length(); n != 2 {
		t.Errorf("expected 2 figures in the pair, got %d", n)
	}
}

func TestComposeFigureCaptions(t *testing.T) {
	doc := composeDoc(t, sampleContent(), types.DefaultLayoutOptions())

	hero := doc.Find("figure.hero")
	if hero.Find("figcaption").Length() != 0 {
		t.Error("hero without caption or alt text should have no figcaption")
	}
	if alt := hero.Find("img").AttrOr("alt", ""); alt != "Article image" {
		t.Errorf("hero img alt = %q, want fallback text", alt)
	}
	if got := doc.Find("figure.centered figcaption").Text(); got != "A mid-article view" {
		t.Errorf("centered figcaption = %q", got)
	}
}

func TestComposeOverflowPlacementsTrail(t *testing.T) {
	content := sampleContent()
	content.ImagePlacements = []*types.ImagePlacement{
		{Image: &types.Image{DataURI: "data:image/jpeg;base64,late", Width: 900, Height: 600},
			Type: types.PlacementCentered, ParagraphIndex: 10},
	}
	doc := composeDoc(t, content, types.DefaultLayoutOptions())

	last := doc.Find(".article-body").Children().Last()
	if goquery.NodeName(last) != "figure" {
		t.Errorf("last body child = %q, want trailing figure", goquery.NodeName(last))
	}
}

func TestComposeDropsSourceFigures(t *testing.T) {
	doc := composeDoc(t, sampleContent(), types.DefaultLayoutOptions())

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if src := s.AttrOr("src", ""); src == "original.jpg" {
			t.Error("source figure should not survive composition")
		}
	})
}

func TestComposeIdempotent(t *testing.T) {
	content := sampleContent()
	options := types.DefaultLayoutOptions()

	first, err := Compose(content, options)
	if err != nil {
		t.Fatalf("first Compose() error: %v", err)
	}
	second, err := Compose(content, options)
	if err != nil {
		t.Fatalf("second Compose() error: %v", err)
	}

	firstHTML, err := first.HTML()
	if err != nil {
		t.Fatal(err)
	}
	secondHTML, err := second.HTML()
	if err != nil {
		t.Fatal(err)
	}
	if firstHTML != secondHTML {
		t.Error("composing the same content twice produced different documents")
	}
	if first.Root() == second.Root() {
		t.Error("composed documents share a root node")
	}
}
