package docsite

import "context"

// Page is a rendered documentation page.
type Page struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Category string `json:"category,omitempty"`
	Position int    `json:"position"`
	Markdown string `json:"-"`
	HTML     string `json:"-"` // rendered body, heading ids assigned
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.Path == "" || p.Path[0] != '/' {
		return Errorf(EINVALID, "page path must start with /: %q", p.Path)
	}
	if p.Title == "" {
		return Errorf(EINVALID, "page %s: title required", p.Path)
	}
	return nil
}

// Ref returns the PageRef used by content actions, with the absolute URL
// built from baseURL.
func (p *Page) Ref(baseURL string) PageRef {
	return PageRef{Title: p.Title, URL: baseURL + p.Path, Summary: p.Summary}
}

// ContentHTML wraps the rendered body in the content region page parsers
// read.
func (p *Page) ContentHTML() string {
	return `<article data-page-content>` + p.HTML + `</article>`
}

// PageService provides the static documentation pages.
type PageService interface {
	// FindPageByPath returns the page served at path.
	// Returns ENOTFOUND if no page exists at path.
	FindPageByPath(ctx context.Context, path string) (*Page, error)

	// FindPages returns all pages ordered by position.
	FindPages(ctx context.Context) ([]*Page, error)
}

// Renderer converts page markdown to HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}
