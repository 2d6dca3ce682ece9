package main

import (
	"fmt"

	"github.com/fwojciec/docsite"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	pages, err := deps.Pages.FindPages(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsite.ErrorMessage(err))
		return err
	}

	checker := &docsite.LinkChecker{Links: deps.Links, Parser: deps.Parser}
	broken, err := checker.CheckPages(deps.Ctx, pages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsite.ErrorMessage(err))
		return err
	}
	fromRecords, err := checker.CheckRecords(deps.Ctx, deps.Records, pages)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsite.ErrorMessage(err))
		return err
	}
	broken = append(broken, fromRecords...)

	if len(broken) == 0 {
		fmt.Fprintf(deps.Stdout, "All links OK (%d pages, %d records).\n", len(pages), len(deps.Records))
		return nil
	}

	for _, b := range broken {
		target := b.Link.Path
		if b.Link.Fragment != "" {
			target += "#" + b.Link.Fragment
		}
		fmt.Fprintf(deps.Stdout, "%s: %s (%s)\n", b.Source, target, b.Reason)
	}
	return docsite.Errorf(docsite.EINVALID, "%d broken links", len(broken))
}
