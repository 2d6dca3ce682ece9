package goquery

import "github.com/fwojciec/docsite"

// Ensure Parser implements docsite.PageParser at compile time.
var _ docsite.PageParser = (*Parser)(nil)

// Parser creates goquery-backed content sources and heading scanners.
type Parser struct {
	// Converter is used for docsite.FormatMarkdown. Without it markdown
	// requests fall back to plain text.
	Converter docsite.Converter
}

// ContentSource returns a source reading the content region of html.
func (p *Parser) ContentSource(html string, format docsite.ContentFormat) docsite.PageContentSource {
	src := &ContentSource{HTML: html}
	if format == docsite.FormatMarkdown {
		src.Converter = p.Converter
	}
	return src
}

// HeadingScanner returns a scanner over the headings of html.
func (p *Parser) HeadingScanner(html string) docsite.HeadingScanner {
	return &HeadingScanner{HTML: html}
}
