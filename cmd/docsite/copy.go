package main

import (
	"fmt"

	"github.com/fwojciec/docsite"
)

// Run executes the copy command.
func (c *CopyCmd) Run(deps *Dependencies) error {
	page, err := findPage(deps, c.Path)
	if err != nil {
		return err
	}

	remote := c.Remote || c.Render
	if remote && deps.Fetcher == nil {
		return docsite.Errorf(docsite.EINVALID, "remote copy requires a fetcher")
	}

	format := docsite.FormatText
	if c.Markdown {
		format = docsite.FormatMarkdown
	}

	ref := page.Ref(deps.Config.BaseURL)
	x := &docsite.ContentExtractor{
		Source:    contentSource(deps, page, format, remote),
		Clipboard: deps.Clipboard,
		Notifier:  deps.Notifier,
		Logger:    deps.Logger,
	}

	if c.Print {
		if c.Link {
			fmt.Fprintln(deps.Stdout, ref.URL)
		} else {
			fmt.Fprintln(deps.Stdout, x.Extract(deps.Ctx, ref))
		}
		return nil
	}

	var ok bool
	if c.Link {
		ok = x.CopyLink(deps.Ctx, ref)
	} else {
		ok = x.CopyPage(deps.Ctx, ref)
	}
	if !ok {
		return docsite.Errorf(docsite.ECLIPBOARD, "copy failed")
	}
	return nil
}
