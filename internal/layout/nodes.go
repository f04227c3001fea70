package layout

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// newElement builds a fresh element node with the given attributes.
func newElement(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func newText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// appendClass adds a class name to the element, preserving existing classes.
func appendClass(n *html.Node, name string) {
	for i, a := range n.Attr {
		if a.Key == "class" {
			if a.Val == "" {
				n.Attr[i].Val = name
			} else {
				n.Attr[i].Val = a.Val + " " + name
			}
			return
		}
	}
	n.Attr = append(n.Attr, attr("class", name))
}

// cloneTree deep-copies a node and its subtree. The clone shares nothing
// with the original, so appending it to the composed document can never
// write through into the source tree.
func cloneTree(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		clone.Attr = append([]html.Attribute(nil), n.Attr...)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneTree(c))
	}
	return clone
}

func isHeading(name string) bool {
	switch name {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

func hasVisibleText(text string) bool {
	return strings.TrimSpace(text) != ""
}
