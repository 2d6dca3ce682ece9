package docsite

import "context"

// Fetcher retrieves rendered HTML from URLs. It is used to run content
// extraction and heading scans against a deployed copy of the site.
type Fetcher interface {
	// Fetch returns the HTML of the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources.
	Close() error
}
