package docsite

import (
	"context"
	"strings"
)

// PageLink is a link from a page to a path on the site.
type PageLink struct {
	Path     string
	Fragment string
	Text     string
}

// LinkExtractor lists the internal links of rendered HTML.
type LinkExtractor interface {
	ExtractLinks(html string) ([]PageLink, error)
}

// BrokenLink is a link whose target page or heading does not exist.
type BrokenLink struct {
	// Source is the page path or "records" for the search index.
	Source string
	Link   PageLink
	Reason string
}

// SplitLink splits an internal URL into path and fragment. An empty path
// refers to the current page.
func SplitLink(u string) PageLink {
	path, fragment, _ := strings.Cut(u, "#")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return PageLink{Path: path, Fragment: fragment}
}

// LinkChecker verifies that internal links resolve to a page and, when they
// carry a fragment, to a heading of that page.
type LinkChecker struct {
	Links  LinkExtractor
	Parser PageParser
}

// CheckPages checks the links of every page against pages.
func (c *LinkChecker) CheckPages(ctx context.Context, pages []*Page) ([]BrokenLink, error) {
	anchors, err := c.anchors(ctx, pages)
	if err != nil {
		return nil, err
	}

	var broken []BrokenLink
	for _, p := range pages {
		links, err := c.Links.ExtractLinks(p.HTML)
		if err != nil {
			return nil, err
		}
		for _, l := range links {
			if l.Path == "" {
				l.Path = p.Path
			}
			if reason := checkLink(anchors, l); reason != "" {
				broken = append(broken, BrokenLink{Source: p.Path, Link: l, Reason: reason})
			}
		}
	}
	return broken, nil
}

// CheckRecords checks the URLs of internal search records against pages.
func (c *LinkChecker) CheckRecords(ctx context.Context, records []SearchRecord, pages []*Page) ([]BrokenLink, error) {
	anchors, err := c.anchors(ctx, pages)
	if err != nil {
		return nil, err
	}

	var broken []BrokenLink
	for _, r := range records {
		if r.IsExternal() {
			continue
		}
		l := SplitLink(r.URL)
		l.Text = r.Title
		if reason := checkLink(anchors, l); reason != "" {
			broken = append(broken, BrokenLink{Source: "records", Link: l, Reason: reason})
		}
	}
	return broken, nil
}

// anchors maps every page path to the set of its heading ids.
func (c *LinkChecker) anchors(ctx context.Context, pages []*Page) (map[string]map[string]bool, error) {
	out := make(map[string]map[string]bool, len(pages))
	for _, p := range pages {
		entries, err := c.Parser.HeadingScanner(p.HTML).ScanHeadings(ctx)
		if err != nil {
			return nil, err
		}
		ids := make(map[string]bool, len(entries))
		for _, e := range entries {
			ids[e.ID] = true
		}
		out[p.Path] = ids
	}
	return out, nil
}

func checkLink(anchors map[string]map[string]bool, l PageLink) string {
	ids, ok := anchors[l.Path]
	if !ok {
		return "no such page"
	}
	if l.Fragment != "" && !ids[l.Fragment] {
		return "no such heading"
	}
	return ""
}
