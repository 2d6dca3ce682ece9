package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsite"
)

// Ensure LinkExtractor implements docsite.LinkExtractor at compile time.
var _ docsite.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor finds the internal links of rendered pages. Links are
// internal when they are relative or point at the host of BaseURL.
type LinkExtractor struct {
	BaseURL string
}

// ExtractLinks returns the internal links of html in document order,
// deduplicated by path and fragment.
func (x *LinkExtractor) ExtractLinks(html string) ([]docsite.PageLink, error) {
	base, err := url.Parse(x.BaseURL)
	if err != nil {
		return nil, docsite.Errorf(docsite.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docsite.Errorf(docsite.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[docsite.PageLink]bool)
	var links []docsite.PageLink
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		if ref.IsAbs() && ref.Host != base.Host {
			return
		}
		// Fragment-only links target the current page.
		var path string
		if ref.Path != "" || ref.Host != "" {
			path = base.ResolveReference(ref).Path
		}

		link := docsite.SplitLink(path + "#" + ref.Fragment)
		key := link
		if seen[key] {
			return
		}
		seen[key] = true
		link.Text = strings.TrimSpace(sel.Text())
		links = append(links, link)
	})
	return links, nil
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
