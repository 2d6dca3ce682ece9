// Package content holds the embedded documentation pages and search records
// and serves them through docsite.PageService.
package content

import (
	"bytes"
	"context"
	"embed"
	"io/fs"
	"path"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/fwojciec/docsite"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// APIBaseURLPlaceholder is replaced in page markdown by the configured API
// base URL, so code samples point at the documented service.
const APIBaseURLPlaceholder = "{{apiBaseURL}}"

// SiteTitle heads the full-docs bundle.
const SiteTitle = "Wallet Documentation"

//go:embed records.yaml pages
var files embed.FS

// FS returns the embedded content tree.
func FS() fs.FS {
	return files
}

// LoadRecords reads and validates records.yaml from fsys.
func LoadRecords(fsys fs.FS) ([]docsite.SearchRecord, error) {
	data, err := fs.ReadFile(fsys, "records.yaml")
	if err != nil {
		return nil, err
	}

	var records []docsite.SearchRecord
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&records); err != nil {
		return nil, docsite.Errorf(docsite.EINVALID, "records.yaml: %v", err)
	}
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Ensure Library implements docsite.PageService at compile time.
var _ docsite.PageService = (*Library)(nil)

// Library serves the pages found under pages/ in its file system. Load must
// be called before the pages are queried.
type Library struct {
	fsys     fs.FS
	renderer docsite.Renderer

	// APIBaseURL is substituted for APIBaseURLPlaceholder.
	APIBaseURL string

	mu     sync.RWMutex
	pages  []*docsite.Page
	byPath map[string]*docsite.Page
}

// NewLibrary returns a Library reading from fsys and rendering with renderer.
func NewLibrary(fsys fs.FS, renderer docsite.Renderer) *Library {
	return &Library{fsys: fsys, renderer: renderer}
}

// Load parses and renders every page concurrently.
func (l *Library) Load(ctx context.Context) error {
	var names []string
	err := fs.WalkDir(l.fsys, "pages", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".md" {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return err
	}

	pages := make([]*docsite.Page, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			page, err := l.loadPage(name)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(pages, func(i, j int) bool {
		if pages[i].Position != pages[j].Position {
			return pages[i].Position < pages[j].Position
		}
		return pages[i].Path < pages[j].Path
	})

	byPath := make(map[string]*docsite.Page, len(pages))
	for _, p := range pages {
		if _, dup := byPath[p.Path]; dup {
			return docsite.Errorf(docsite.EINVALID, "duplicate page path %s", p.Path)
		}
		byPath[p.Path] = p
	}

	l.mu.Lock()
	l.pages = pages
	l.byPath = byPath
	l.mu.Unlock()
	return nil
}

func (l *Library) loadPage(name string) (*docsite.Page, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, err
	}

	page, err := ParsePage(PagePath(name), string(data))
	if err != nil {
		return nil, err
	}
	if l.APIBaseURL != "" {
		page.Markdown = strings.ReplaceAll(page.Markdown, APIBaseURLPlaceholder, strings.TrimRight(l.APIBaseURL, "/"))
	}

	if page.HTML, err = l.renderer.Render(page.Markdown); err != nil {
		return nil, err
	}
	return page, nil
}

// FindPageByPath returns the page served at p.
func (l *Library) FindPageByPath(ctx context.Context, p string) (*docsite.Page, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	page, ok := l.byPath[CleanPath(p)]
	if !ok {
		return nil, docsite.Errorf(docsite.ENOTFOUND, "page %s not found", p)
	}
	return page, nil
}

// FindPages returns all pages ordered by position.
func (l *Library) FindPages(ctx context.Context) ([]*docsite.Page, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*docsite.Page, len(l.pages))
	copy(out, l.pages)
	return out, nil
}

// PagePath maps a file under pages/ to the URL path it is served at.
// pages/index.md is served at "/".
func PagePath(name string) string {
	p := strings.TrimSuffix(strings.TrimPrefix(name, "pages"), ".md")
	p = strings.TrimSuffix(p, "/index")
	if p == "" || p == "/index" {
		return "/"
	}
	return p
}

// CleanPath normalizes a request path: fragments, queries and trailing
// slashes are dropped.
func CleanPath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = path.Clean("/" + p)
	return p
}

type pageMeta struct {
	Title    string `yaml:"title"`
	Summary  string `yaml:"summary"`
	Category string `yaml:"category"`
	Position int    `yaml:"position"`
}

// ParsePage splits YAML frontmatter from the markdown body.
func ParsePage(p, src string) (*docsite.Page, error) {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	if !strings.HasPrefix(src, "---\n") {
		return nil, docsite.Errorf(docsite.EINVALID, "page %s: missing frontmatter", p)
	}
	rest := src[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return nil, docsite.Errorf(docsite.EINVALID, "page %s: unterminated frontmatter", p)
	}

	var meta pageMeta
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return nil, docsite.Errorf(docsite.EINVALID, "page %s: frontmatter: %v", p, err)
	}

	page := &docsite.Page{
		Path:     p,
		Title:    meta.Title,
		Summary:  strings.TrimSpace(meta.Summary),
		Category: meta.Category,
		Position: meta.Position,
		Markdown: strings.TrimLeft(rest[end+len("\n---\n"):], "\n"),
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}
