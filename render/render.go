// Package render turns a composed article document into a standalone,
// print-targeted HTML page. Converting that page into a fixed-page format
// (PDF) is the job of an external renderer.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/pagefold/pagefold/types"
)

//go:embed templates/*.tmpl styles/*.css
var assets embed.FS

var pageTemplate = template.Must(template.ParseFS(assets, "templates/article.html.tmpl"))

type pageData struct {
	Title  string
	Style  string
	Styles template.CSS
	Body   template.HTML
}

// Render produces the final HTML page for a composed document. The page is
// self-contained: styles are inlined and images are data URIs.
func Render(content *types.AnalyzedContent, doc *types.Document) (string, error) {
	body, err := doc.HTML()
	if err != nil {
		return "", fmt.Errorf("rendering document tree: %w", err)
	}

	styles, err := stylesFor(doc.Options().Style)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	err = pageTemplate.Execute(&b, pageData{
		Title:  content.Title,
		Style:  string(doc.Options().Style),
		Styles: template.CSS(styles),
		Body:   template.HTML(body),
	})
	if err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	return b.String(), nil
}

// stylesFor concatenates the base stylesheet with the style-specific one.
func stylesFor(style types.Style) (string, error) {
	base, err := assets.ReadFile("styles/base.css")
	if err != nil {
		return "", fmt.Errorf("loading base styles: %w", err)
	}
	specific, err := assets.ReadFile("styles/" + string(style) + ".css")
	if err != nil {
		return "", fmt.Errorf("loading %s styles: %w", style, err)
	}
	return string(base) + "\n" + string(specific), nil
}
