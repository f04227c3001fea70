package types

// PullQuote represents a sentence selected for display as a pull quote.
// ParagraphIndex is the zero-based ordinal of the source paragraph among
// paragraph elements only; it is the coordinate system shared with image
// placement.
type PullQuote struct {
	Text           string  `json:"text"`
	Score          float64 `json:"score"`
	ParagraphIndex int     `json:"paragraph_index"`
}

// PlacementType describes how a figure is positioned in the layout.
type PlacementType string

const (
	PlacementHero     PlacementType = "hero"     // full width at the top of the body
	PlacementCentered PlacementType = "centered" // single centered figure
	PlacementPaired   PlacementType = "paired"   // two portrait figures side by side
)

// ImagePlacement assigns an image a placement type and a target paragraph
// index. Paired placements carry a mutual PairWith reference; exactly two
// placements form a pair.
type ImagePlacement struct {
	Image          *Image          `json:"image"`
	Type           PlacementType   `json:"placement_type"`
	ParagraphIndex int             `json:"paragraph_index"`
	PairWith       *ImagePlacement `json:"-"`
}

// AnalyzedContent is the result of structural analysis: everything from
// ExtractedContent plus the subtitle, the selected pull quotes (ascending by
// paragraph index), and the image placement plan. It is a value object;
// nothing mutates it after construction.
type AnalyzedContent struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle,omitempty"` // deck/standfirst
	Author     string `json:"author,omitempty"`
	Date       string `json:"date,omitempty"`
	Kicker     string `json:"kicker,omitempty"`
	SourceName string `json:"source_name"`
	SourceURL  string `json:"source_url"`

	// HTMLContent preserves the extracted block structure unchanged.
	HTMLContent string `json:"html_content"`

	PullQuotes      []PullQuote       `json:"pull_quotes,omitempty"`
	ImagePlacements []*ImagePlacement `json:"image_placements,omitempty"`

	WordCount          int `json:"word_count"`
	ReadingTimeMinutes int `json:"reading_time_minutes"`
	ParagraphCount     int `json:"paragraph_count"`
}
