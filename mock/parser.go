package mock

import "github.com/fwojciec/docsite"

var _ docsite.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of docsite.PageParser.
type PageParser struct {
	ContentSourceFn  func(html string, format docsite.ContentFormat) docsite.PageContentSource
	HeadingScannerFn func(html string) docsite.HeadingScanner
}

func (p *PageParser) ContentSource(html string, format docsite.ContentFormat) docsite.PageContentSource {
	return p.ContentSourceFn(html, format)
}

func (p *PageParser) HeadingScanner(html string) docsite.HeadingScanner {
	return p.HeadingScannerFn(html)
}

var _ docsite.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docsite.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string) ([]docsite.PageLink, error)
}

func (x *LinkExtractor) ExtractLinks(html string) ([]docsite.PageLink, error) {
	return x.ExtractLinksFn(html)
}
