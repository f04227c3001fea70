package types

import (
	"strings"

	"golang.org/x/net/html"
)

// Document is the composed article tree produced by the layout composer:
// an <article> root holding the header, the interleaved body, and an
// optional footer. The tree is built fresh during composition and shares no
// node identity with the source content.
type Document struct {
	root    *html.Node
	options LayoutOptions
}

// NewDocument wraps a composed root node with the options that shaped it.
func NewDocument(root *html.Node, options LayoutOptions) *Document {
	return &Document{root: root, options: options}
}

// Root returns the <article> root node of the composed tree.
func (d *Document) Root() *html.Node {
	return d.root
}

// Options returns the layout options the document was composed with.
func (d *Document) Options() LayoutOptions {
	return d.options
}

// HTML renders the composed tree as an HTML fragment.
func (d *Document) HTML() (string, error) {
	var b strings.Builder
	if err := html.Render(&b, d.root); err != nil {
		return "", err
	}
	return b.String(), nil
}
