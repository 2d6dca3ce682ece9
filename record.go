package docsite

import "strings"

// Kind determines how a search record is displayed and how selecting it
// navigates.
type Kind string

// Supported record kinds. Only KindExternal leaves the site.
const (
	KindPage     Kind = "page"
	KindSection  Kind = "section"
	KindAPI      Kind = "api"
	KindExternal Kind = "external"
)

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindPage, KindSection, KindAPI, KindExternal:
		return true
	}
	return false
}

// SearchRecord is a documentation index entry defined at build time.
type SearchRecord struct {
	Title       string `json:"title" yaml:"title"`
	URL         string `json:"url" yaml:"url"`
	Kind        Kind   `json:"kind" yaml:"kind"`
	Description string `json:"description,omitempty" yaml:"description"`
	Category    string `json:"category,omitempty" yaml:"category"`
}

// Validate returns an error if the record contains invalid fields.
func (r *SearchRecord) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "search record title required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "search record %q: url required", r.Title)
	}
	if !r.Kind.Valid() {
		return Errorf(EINVALID, "search record %q: unknown kind %q", r.Title, r.Kind)
	}
	if r.Kind == KindExternal && !strings.HasPrefix(r.URL, "https://") {
		return Errorf(EINVALID, "search record %q: external url must be absolute https", r.Title)
	}
	if r.Kind != KindExternal && !strings.HasPrefix(r.URL, "/") {
		return Errorf(EINVALID, "search record %q: internal url must be a path", r.Title)
	}
	return nil
}

// IsExternal reports whether selecting the record opens a new browsing context.
func (r *SearchRecord) IsExternal() bool {
	return r.Kind == KindExternal
}

// searchText is the lowercased text a query is matched against.
func (r *SearchRecord) searchText() string {
	return strings.ToLower(r.Title + " " + r.Description + " " + r.Category)
}
