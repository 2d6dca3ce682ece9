// Package browser opens documentation pages in the user's web browser using
// pkg/browser.
package browser

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/fwojciec/docsite"
	"github.com/pkg/browser"
)

// Ensure Opener implements the navigation interfaces at compile time.
var (
	_ docsite.Navigator = (*Opener)(nil)
	_ docsite.TabOpener = (*Opener)(nil)
)

func init() {
	// Launchers print to the terminal otherwise.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Opener opens internal paths relative to BaseURL and external URLs as is.
type Opener struct {
	BaseURL string

	// OpenURL launches the browser. Defaults to the system browser.
	OpenURL func(url string) error
}

// NewOpener returns an Opener resolving internal paths against baseURL.
func NewOpener(baseURL string) *Opener {
	return &Opener{
		BaseURL: strings.TrimRight(baseURL, "/"),
		OpenURL: browser.OpenURL,
	}
}

// Navigate opens the internal path on the documentation site.
func (o *Opener) Navigate(ctx context.Context, path string) error {
	if !strings.HasPrefix(path, "/") {
		return docsite.Errorf(docsite.EINVALID, "internal path must start with /: %q", path)
	}
	return o.open(ctx, strings.TrimRight(o.BaseURL, "/")+path)
}

// OpenTab opens an absolute http(s) URL.
func (o *Opener) OpenTab(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return docsite.Errorf(docsite.EINVALID, "not an absolute http(s) URL: %q", rawURL)
	}
	return o.open(ctx, rawURL)
}

func (o *Opener) open(ctx context.Context, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.OpenURL(target); err != nil {
		return docsite.Errorf(docsite.EINTERNAL, "open %s: %v", target, err)
	}
	return nil
}
