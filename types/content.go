// Package types defines the data model shared by the pagefold extraction,
// analysis, and layout packages.
package types

import "strings"

// Image represents a downloaded and processed article image.
// The pixel data is carried as a data URI so the composed document is
// self-contained. Images are immutable once extracted; later stages hold
// references to them, never copies.
type Image struct {
	OriginalURL string `json:"original_url"`
	DataURI     string `json:"data_uri"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	AltText     string `json:"alt_text,omitempty"`
	Caption     string `json:"caption,omitempty"`
	Position    int    `json:"position"` // order of appearance in the article
}

// AspectRatio returns width/height, treating zero height as square.
func (img *Image) AspectRatio() float64 {
	if img.Height == 0 {
		return 1.0
	}
	return float64(img.Width) / float64(img.Height)
}

// IsLandscape reports whether the image is wider than it is tall.
// Non-landscape images are eligible for side-by-side pairing.
func (img *Image) IsLandscape() bool {
	return img.AspectRatio() > 1.0
}

// IsSmall reports whether the image is too small for full-width display.
func (img *Image) IsSmall() bool {
	return img.Width < 400 || img.Height < 300
}

// ExtractedContent represents an article as produced by the extraction
// stage: cleaned block-level HTML plus metadata and processed images.
// It is treated as immutable by every later stage.
type ExtractedContent struct {
	Title       string  `json:"title"`
	HTMLContent string  `json:"html_content"`
	TextContent string  `json:"text_content"`
	Author      string  `json:"author,omitempty"`
	Date        string  `json:"date,omitempty"`
	Kicker      string  `json:"kicker,omitempty"` // category/topic label
	SourceURL   string  `json:"source_url"`
	SourceName  string  `json:"source_name"`
	Images      []Image `json:"images,omitempty"`
}

// WordCount returns the approximate number of words in the article text.
func (c *ExtractedContent) WordCount() int {
	return len(strings.Fields(c.TextContent))
}

// ReadingTimeMinutes estimates reading time at 200 words per minute,
// never reporting less than one minute.
func (c *ExtractedContent) ReadingTimeMinutes() int {
	minutes := c.WordCount() / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}
