package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsite"
)

const headingSelector = "h1, h2, h3, h4"

// Ensure HeadingScanner implements docsite.HeadingScanner at compile time.
var _ docsite.HeadingScanner = (*HeadingScanner)(nil)

// HeadingScanner lists the headings of a rendered page.
type HeadingScanner struct {
	HTML string
}

// ScanHeadings returns the page headings in document order.
func (s *HeadingScanner) ScanHeadings(ctx context.Context) ([]docsite.HeadingEntry, error) {
	entries, _, err := AssignHeadingIDs(s.HTML)
	return entries, err
}

// AssignHeadingIDs finds the h1-h4 headings of the content region, or of the
// whole document when it has none, and gives every heading without an id
// one synthesized from its position. It returns the entries and the HTML
// with the ids written back.
func AssignHeadingIDs(raw string) ([]docsite.HeadingEntry, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, "", docsite.Errorf(docsite.EINVALID, "failed to parse HTML: %v", err)
	}

	scope := doc.Find(ContentSelector).First()
	if scope.Length() == 0 {
		scope = doc.Selection
	}

	headings := scope.Find(headingSelector)

	// Explicit ids are kept verbatim and synthesized ids never reuse them.
	used := make(map[string]bool)
	headings.Each(func(_ int, sel *goquery.Selection) {
		if id := explicitID(sel); id != "" {
			used[id] = true
		}
	})

	var entries []docsite.HeadingEntry
	headings.Each(func(i int, sel *goquery.Selection) {
		id := explicitID(sel)
		if id == "" {
			for n := i; ; n++ {
				if id = docsite.HeadingID("", n); !used[id] {
					break
				}
			}
			used[id] = true
			sel.SetAttr("id", id)
		}
		entries = append(entries, docsite.HeadingEntry{
			ID:    id,
			Title: strings.TrimSpace(sel.Text()),
			Level: headingLevel(goquery.NodeName(sel)),
		})
	})

	out, err := fragmentHTML(doc, raw)
	if err != nil {
		return nil, "", err
	}
	return entries, out, nil
}

// explicitID returns the heading's id attribute as written, or "" when it
// is absent or blank.
func explicitID(sel *goquery.Selection) string {
	id, _ := sel.Attr("id")
	if strings.TrimSpace(id) == "" {
		return ""
	}
	return id
}

func headingLevel(name string) int {
	if len(name) == 2 && name[0] == 'h' {
		return int(name[1] - '0')
	}
	return docsite.MinHeadingLevel
}

// fragmentHTML serializes doc back in the shape it was given: a full document
// when raw was one, the body contents otherwise.
func fragmentHTML(doc *goquery.Document, raw string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html") {
		return goquery.OuterHtml(doc.Selection)
	}
	return doc.Find("body").Html()
}

// Ensure HeadingRenderer implements docsite.Renderer at compile time.
var _ docsite.Renderer = (*HeadingRenderer)(nil)

// HeadingRenderer assigns heading ids to the output of another Renderer so
// every outline entry has an anchor in the served page.
type HeadingRenderer struct {
	Renderer docsite.Renderer
}

// Render renders markdown and writes heading ids into the result.
func (r *HeadingRenderer) Render(markdown string) (string, error) {
	out, err := r.Renderer.Render(markdown)
	if err != nil {
		return "", err
	}
	_, out, err = AssignHeadingIDs(out)
	return out, err
}
