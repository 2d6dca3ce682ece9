package main

import (
	"fmt"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/fs"
)

// Run executes the download command.
func (c *DownloadCmd) Run(deps *Dependencies) error {
	pages, err := deps.Pages.FindPages(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsite.ErrorMessage(err))
		return err
	}

	full := docsite.BuildFullDocs(deps.Config.SiteTitle, docsite.PageSections(pages), deps.now())
	path, err := fs.NewWriter(c.Dir).WriteFullDocs(deps.Ctx, full)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsite.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s (%d pages)\n", path, len(pages))

	if !c.Split {
		return nil
	}

	store := fs.NewFileStore(c.Dir, c.Name, deps.Config.BaseURL)
	for _, p := range pages {
		if err := store.Save(deps.Ctx, p); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsite.ErrorMessage(err))
			return err
		}
	}
	if err := store.Commit(); err != nil {
		_ = store.Abort()
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", store.Dir())
	return nil
}
