// Package htmltomarkdown renders page HTML back to Markdown for the
// "copy page" and full-docs actions.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docsite"
)

// Ensure Converter implements docsite.Converter at compile time.
var _ docsite.Converter = (*Converter)(nil)

// Converter converts rendered page HTML to Markdown.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain resolves relative links and images against domain, so copied
// Markdown keeps working outside the site.
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = strings.TrimRight(domain, "/")
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML into normalized Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docsite.Errorf(docsite.EINVALID, "empty HTML input")
	}

	var (
		md  string
		err error
	)
	if c.domain != "" {
		md, err = c.conv.ConvertString(html, converter.WithDomain(c.domain))
	} else {
		md, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", err
	}
	return docsite.NormalizeText(md), nil
}
