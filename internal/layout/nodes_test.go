package layout

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestCloneTree(t *testing.T) {
	root, err := html.Parse(strings.NewReader(`<p class="lede">Hello <em>there</em></p>`))
	if err != nil {
		t.Fatal(err)
	}
	var p *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			p = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(root)
	if p == nil {
		t.Fatal("fixture paragraph not found")
	}

	clone := cloneTree(p)

	if clone == p {
		t.Fatal("clone shares identity with the source")
	}
	if clone.Parent != nil || clone.NextSibling != nil {
		t.Error("clone should be detached")
	}
	if clone.FirstChild == p.FirstChild {
		t.Error("clone shares children with the source")
	}

	// Writing through the clone must not reach the source.
	appendClass(clone, "drop-cap")
	for _, a := range p.Attr {
		if strings.Contains(a.Val, "drop-cap") {
			t.Error("mutating the clone changed the source attributes")
		}
	}

	var render func(*html.Node, *strings.Builder)
	render = func(n *html.Node, b *strings.Builder) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			render(c, b)
		}
	}
	var got strings.Builder
	render(clone, &got)
	if got.String() != "Hello there" {
		t.Errorf("clone text = %q, want %q", got.String(), "Hello there")
	}
}

func TestAppendClass(t *testing.T) {
	n := newElement("p")
	appendClass(n, "drop-cap")
	if n.Attr[0].Val != "drop-cap" {
		t.Errorf("class = %q, want drop-cap", n.Attr[0].Val)
	}
	appendClass(n, "lede")
	if n.Attr[0].Val != "drop-cap lede" {
		t.Errorf("class = %q, want both classes", n.Attr[0].Val)
	}
}

func TestIsHeading(t *testing.T) {
	for _, name := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
		if !isHeading(name) {
			t.Errorf("%s should be a heading", name)
		}
	}
	for _, name := range []string{"p", "div", "header", "h7"} {
		if isHeading(name) {
			t.Errorf("%s should not be a heading", name)
		}
	}
}
