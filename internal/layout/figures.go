package layout

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/pagefold/pagefold/types"
)

// buildFigure renders an image placement as figure markup. A paired
// placement becomes two side-by-side figures sharing a wrapper; any other
// placement is a single figure.
func buildFigure(placement *types.ImagePlacement) *html.Node {
	if placement.Type == types.PlacementPaired && placement.PairWith != nil {
		wrapper := newElement("div", attr("class", "figure-pair"))
		wrapper.AppendChild(buildSingleFigure(placement))
		wrapper.AppendChild(buildSingleFigure(placement.PairWith))
		return wrapper
	}
	return buildSingleFigure(placement)
}

func buildSingleFigure(placement *types.ImagePlacement) *html.Node {
	figure := newElement("figure", attr("class", "figure "+string(placement.Type)))

	alt := placement.Image.AltText
	if alt == "" {
		alt = "Article image"
	}
	figure.AppendChild(newElement("img",
		attr("src", placement.Image.DataURI),
		attr("alt", alt),
	))

	// Caption falls back to alt text; omitted entirely when both are empty.
	caption := placement.Image.Caption
	if caption == "" {
		caption = placement.Image.AltText
	}
	if strings.TrimSpace(caption) != "" {
		figcaption := newElement("figcaption")
		figcaption.AppendChild(newText(caption))
		figure.AppendChild(figcaption)
	}

	return figure
}

// buildPullQuote renders a selected quote as an aside set apart from the
// body flow.
func buildPullQuote(quote types.PullQuote) *html.Node {
	aside := newElement("aside", attr("class", "pull-quote"))
	blockquote := newElement("blockquote")
	blockquote.AppendChild(newText(quote.Text))
	aside.AppendChild(blockquote)
	return aside
}
