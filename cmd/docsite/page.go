package main

import (
	"fmt"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/goquery"
	docsiteslog "github.com/fwojciec/docsite/slog"
)

// findPage looks up path and reports a missing page on stderr.
func findPage(deps *Dependencies, path string) (*docsite.Page, error) {
	page, err := deps.Pages.FindPageByPath(deps.Ctx, path)
	if err != nil {
		if docsite.ErrorCode(err) == docsite.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: page %q not found. Use 'docsite search' to find pages.\n", path)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsite.ErrorMessage(err))
		}
		return nil, err
	}
	return page, nil
}

// contentSource returns the source of a page's text: the local rendering,
// or the deployed page when remote.
func contentSource(deps *Dependencies, page *docsite.Page, format docsite.ContentFormat, remote bool) docsite.PageContentSource {
	var src docsite.PageContentSource
	if remote {
		remoteSrc := &goquery.ContentSource{
			Fetcher: deps.Fetcher,
			URL:     page.Ref(deps.Config.BaseURL).URL,
		}
		if format == docsite.FormatMarkdown {
			remoteSrc.Converter = deps.Converter
		}
		src = remoteSrc
	} else {
		src = deps.Parser.ContentSource(page.ContentHTML(), format)
	}

	if deps.Logger != nil {
		src = docsiteslog.NewLoggingContentSource(src, deps.Logger)
	}
	return src
}
