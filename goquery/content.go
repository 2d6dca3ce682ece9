// Package goquery extracts page content and headings from rendered HTML.
package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsite"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Selectors identifying the regions of a rendered page.
const (
	ContentSelector    = "[data-page-content]"
	ActionMenuSelector = "[data-action-menu]"
)

// invisible matches elements whose text is not part of the rendered page.
const invisible = "script, style, noscript, template, [hidden], [aria-hidden=true], " + ActionMenuSelector

// Ensure ContentSource implements docsite.PageContentSource at compile time.
var _ docsite.PageContentSource = (*ContentSource)(nil)

// ContentSource reads the visible text of a page from its rendered HTML,
// either given directly or fetched from URL.
type ContentSource struct {
	HTML string

	// Fetcher and URL are used when HTML is empty.
	Fetcher docsite.Fetcher
	URL     string

	// Converter switches the output to Markdown converted from the content
	// region instead of plain text.
	Converter docsite.Converter
}

// PageText returns the visible text of the page's content region.
// Returns ENOTFOUND if the page has no content region.
func (s *ContentSource) PageText(ctx context.Context) (string, error) {
	raw := s.HTML
	if raw == "" {
		if s.Fetcher == nil {
			return "", docsite.Errorf(docsite.EINVALID, "content source has neither HTML nor fetcher")
		}
		var err error
		if raw, err = s.Fetcher.Fetch(ctx, s.URL); err != nil {
			return "", err
		}
	}

	if s.Converter != nil {
		region, err := ContentHTML(raw)
		if err != nil {
			return "", err
		}
		return s.Converter.Convert(region)
	}
	return ExtractText(raw)
}

// ContentHTML returns the inner HTML of the content region with the action
// menu and invisible elements removed.
func ContentHTML(raw string) (string, error) {
	region, err := contentRegion(raw)
	if err != nil {
		return "", err
	}
	return region.Html()
}

// ExtractText returns the text of the content region as a reader sees it:
// block elements start new lines, hidden elements and the action menu are
// skipped. The page itself is not modified.
func ExtractText(raw string) (string, error) {
	region, err := contentRegion(raw)
	if err != nil {
		return "", err
	}

	var w textWriter
	for _, n := range region.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.walk(c, false)
		}
	}
	return w.String(), nil
}

// contentRegion parses raw and returns a detached copy of the content region
// with invisible elements removed.
func contentRegion(raw string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, docsite.Errorf(docsite.EINVALID, "failed to parse HTML: %v", err)
	}

	region := doc.Find(ContentSelector).First()
	if region.Length() == 0 {
		return nil, docsite.Errorf(docsite.ENOTFOUND, "page has no content region")
	}

	region = region.Clone()
	region.Find(invisible).Remove()
	return region, nil
}

var blockAtoms = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Dd: true, atom.Details: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Figcaption: true, atom.Figure: true, atom.Footer: true, atom.Form: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Li: true, atom.Main: true, atom.Nav: true,
	atom.Ol: true, atom.P: true, atom.Pre: true, atom.Section: true, atom.Summary: true,
	atom.Table: true, atom.Tr: true, atom.Ul: true,
}

// paragraphAtoms are separated from their neighbours by a blank line.
var paragraphAtoms = map[atom.Atom]bool{
	atom.P: true, atom.Pre: true, atom.Blockquote: true, atom.Table: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
}

type textWriter struct {
	sb strings.Builder
	// space is a pending collapsed whitespace run.
	space bool
}

func (w *textWriter) walk(n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data, pre)
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Br:
		w.newline(1)
		return
	case atom.Td, atom.Th:
		if n.PrevSibling != nil {
			w.sb.WriteString("\t")
		}
	}

	block := blockAtoms[n.DataAtom]
	lines := 1
	if paragraphAtoms[n.DataAtom] {
		lines = 2
	}
	if block {
		w.newline(lines)
	}
	inPre := pre || n.DataAtom == atom.Pre
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, inPre)
	}
	if block {
		w.newline(lines)
	}
}

func (w *textWriter) text(s string, pre bool) {
	if pre {
		w.sb.WriteString(s)
		w.space = false
		return
	}
	for i, field := range strings.Fields(s) {
		if i > 0 || (w.space || startsWithSpace(s)) && w.sb.Len() > 0 && !w.atLineStart() {
			w.sb.WriteByte(' ')
		}
		w.sb.WriteString(field)
		w.space = false
	}
	if endsWithSpace(s) {
		w.space = true
	}
}

func (w *textWriter) newline(n int) {
	w.space = false
	if w.sb.Len() == 0 {
		return
	}
	s := w.sb.String()
	have := len(s) - len(strings.TrimRight(s, "\n"))
	for ; have < n; have++ {
		w.sb.WriteByte('\n')
	}
}

func (w *textWriter) atLineStart() bool {
	s := w.sb.String()
	return s == "" || s[len(s)-1] == '\n' || s[len(s)-1] == '\t'
}

func (w *textWriter) String() string {
	return strings.TrimSpace(w.sb.String())
}

func startsWithSpace(s string) bool {
	return s != "" && strings.TrimLeft(s, " \t\r\n") != s
}

func endsWithSpace(s string) bool {
	return s != "" && strings.TrimRight(s, " \t\r\n") != s
}
