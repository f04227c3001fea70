package types

import "fmt"

// Style selects the visual treatment applied by the renderer.
type Style string

const (
	StyleMagazine Style = "magazine"
	StyleMinimal  Style = "minimal"
)

// LayoutOptions configures layout composition. The zero value is not
// usable directly; obtain defaults from DefaultLayoutOptions and normalize
// user-supplied values with Normalize before composing.
type LayoutOptions struct {
	Style               Style `json:"style" yaml:"style"`
	IncludeImages       bool  `json:"include_images" yaml:"include_images"`
	IncludePullQuotes   bool  `json:"include_pull_quotes" yaml:"include_pull_quotes"`
	IncludeDropCap      bool  `json:"include_drop_cap" yaml:"include_drop_cap"`
	IncludeHeaderFooter bool  `json:"include_header_footer" yaml:"include_header_footer"`
}

// DefaultLayoutOptions returns the magazine style with all layout features
// enabled.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		Style:               StyleMagazine,
		IncludeImages:       true,
		IncludePullQuotes:   true,
		IncludeDropCap:      true,
		IncludeHeaderFooter: true,
	}
}

// Normalize validates the options, filling an empty style with the default.
// Unrecognized styles are rejected here rather than at point of use.
func (o *LayoutOptions) Normalize() error {
	switch o.Style {
	case "":
		o.Style = StyleMagazine
	case StyleMagazine, StyleMinimal:
	default:
		return fmt.Errorf("unknown layout style %q", o.Style)
	}
	return nil
}
