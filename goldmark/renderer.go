// Package goldmark renders documentation markdown to HTML.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/docsite"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Renderer implements docsite.Renderer at compile time.
var _ docsite.Renderer = (*Renderer)(nil)

// Renderer converts page markdown to HTML with GitHub flavored extensions.
// Headings get ids derived from their text; raw HTML such as widget
// placeholders is passed through.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer returns a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render converts markdown to an HTML fragment.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", docsite.Errorf(docsite.EINTERNAL, "render markdown: %v", err)
	}
	return buf.String(), nil
}
