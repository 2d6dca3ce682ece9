package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docsite"
)

// Run executes the toc command.
func (c *TOCCmd) Run(deps *Dependencies) error {
	page, err := findPage(deps, c.Path)
	if err != nil {
		return err
	}

	html := page.ContentHTML()
	if c.Remote {
		if deps.Fetcher == nil {
			return docsite.Errorf(docsite.EINVALID, "remote outline requires a fetcher")
		}
		if html, err = deps.Fetcher.Fetch(deps.Ctx, page.Ref(deps.Config.BaseURL).URL); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsite.ErrorMessage(err))
			return err
		}
	}

	var toc docsite.TableOfContents
	if err := toc.Mount(deps.Ctx, deps.Parser.HeadingScanner(html), nil); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsite.ErrorMessage(err))
		return err
	}
	defer toc.Unmount()

	if !toc.Visible() {
		fmt.Fprintln(deps.Stdout, "No headings.")
		return nil
	}

	for _, e := range toc.Entries() {
		// Two spaces per outline level.
		indent := strings.Repeat(" ", e.Indent()/6)
		fmt.Fprintf(deps.Stdout, "%s- %s  #%s\n", indent, e.Title, e.ID)
	}
	return nil
}
