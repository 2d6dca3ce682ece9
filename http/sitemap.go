package http

import (
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/docsite"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// BuildSitemap returns the sitemap document listing every page under
// baseURL.
func BuildSitemap(baseURL string, pages []*docsite.Page, lastmod time.Time) ([]byte, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNS)

	for _, p := range pages {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(baseURL + p.Path)
		u.CreateElement("lastmod").SetText(lastmod.UTC().Format("2006-01-02"))
	}

	doc.Indent(2)
	b, err := doc.WriteToBytes()
	if err != nil {
		return nil, docsite.Errorf(docsite.EINTERNAL, "write sitemap: %v", err)
	}
	return b, nil
}
