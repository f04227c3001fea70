// Package pagefold transforms extracted web articles into structurally
// complete editorial layouts: a subtitle, spaced pull quotes, an image
// placement plan, and a composed document tree ready for styling and
// fixed-page rendering.
package pagefold

import (
	"github.com/pagefold/pagefold/internal/analyzer"
	"github.com/pagefold/pagefold/internal/layout"
	"github.com/pagefold/pagefold/types"
)

// Image represents a downloaded and processed article image.
type Image = types.Image

// ExtractedContent represents an article as produced by the extraction
// stage.
type ExtractedContent = types.ExtractedContent

// PullQuote represents a sentence selected for display as a pull quote.
type PullQuote = types.PullQuote

// ImagePlacement assigns an image a placement type and a target paragraph
// index.
type ImagePlacement = types.ImagePlacement

// PlacementType describes how a figure is positioned in the layout.
type PlacementType = types.PlacementType

// Placement types produced by the image placement planner.
const (
	PlacementHero     = types.PlacementHero
	PlacementCentered = types.PlacementCentered
	PlacementPaired   = types.PlacementPaired
)

// AnalyzedContent is the result of structural analysis.
type AnalyzedContent = types.AnalyzedContent

// LayoutOptions configures layout composition.
type LayoutOptions = types.LayoutOptions

// Style selects the visual treatment applied by the renderer.
type Style = types.Style

// Available layout styles.
const (
	StyleMagazine = types.StyleMagazine
	StyleMinimal  = types.StyleMinimal
)

// Document is the composed article tree.
type Document = types.Document

// DefaultLayoutOptions returns the magazine style with all layout features
// enabled.
func DefaultLayoutOptions() LayoutOptions {
	return types.DefaultLayoutOptions()
}

// Analyze derives structural analysis from extracted content: subtitle,
// pull quotes, image placements, and paragraph count. numQuotes is the
// desired number of pull quotes; zero disables selection.
func Analyze(content *ExtractedContent, numQuotes int) (*AnalyzedContent, error) {
	return analyzer.Analyze(content, numQuotes)
}

// Compose builds the composed article document (header, interleaved body,
// optional footer) from analyzed content. The source content is never
// mutated; every node in the result is freshly constructed.
func Compose(content *AnalyzedContent, options LayoutOptions) (*Document, error) {
	return layout.Compose(content, options)
}

// BuildInfo contains version and build information for the Pagefold
// library.
type BuildInfo = types.BuildInfo

// GetBuildInfo returns the current version information.
func GetBuildInfo() BuildInfo {
	return types.GetBuildInfo()
}

// Version is the current version of the Pagefold library.
var Version = types.Version

// Name is the name of the Pagefold library.
var Name = types.Name
