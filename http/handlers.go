package http

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/docsite"
	"github.com/go-chi/chi/v5"
)

// pageView is the data of the page layout.
type pageView struct {
	SiteTitle    string
	Page         *docsite.Page
	Article      template.HTML
	Nav          []*docsite.Page
	TOC          []docsite.HeadingEntry
	Theme        docsite.Theme
	URL          string
	AssistantURL string
	StickyOffset int
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	pages, err := s.Pages.FindPages(r.Context())
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "pages": len(pages)})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := s.Pages.FindPageByPath(ctx, r.URL.Path)
	if docsite.ErrorCode(err) == docsite.ENOTFOUND {
		http.Error(w, "Page not found", http.StatusNotFound)
		return
	} else if err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	nav, err := s.Pages.FindPages(ctx)
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	theme := docsite.DefaultTheme
	if s.Preferences != nil {
		if theme, err = s.Preferences.FindTheme(ctx, ClientIDFromContext(ctx)); err != nil {
			Error(w, r, s.Logger, err)
			return
		}
	}

	var toc docsite.TableOfContents
	if err := toc.Mount(ctx, s.Parser.HeadingScanner(page.HTML), nil); err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	view := pageView{
		SiteTitle:    s.SiteTitle,
		Page:         page,
		Article:      template.HTML(s.articleHTML(page)),
		Nav:          nav,
		TOC:          toc.Entries(),
		Theme:        theme,
		URL:          s.BaseURL + page.Path,
		AssistantURL: s.AssistantURL,
		StickyOffset: docsite.StickyHeaderOffset,
	}

	var buf bytes.Buffer
	if err := layout.Execute(&buf, view); err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	etag := ETag(buf.String())
	if notModified(w, r, etag) {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Query   string                 `json:"query"`
	Results []docsite.SearchRecord `json:"results"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	results := s.Searcher.Search(q)
	if results == nil {
		results = []docsite.SearchRecord{}
	}
	writeJSON(w, http.StatusOK, &SearchResponse{Query: q, Results: results})
}

// TOCEntry is one outline entry of GET /api/toc.
type TOCEntry struct {
	docsite.HeadingEntry
	Indent int `json:"indent"`
}

// TOCResponse is the body of GET /api/toc.
type TOCResponse struct {
	Visible bool       `json:"visible"`
	Offset  int        `json:"offset"`
	Entries []TOCEntry `json:"entries"`
}

func (s *Server) handleTOC(w http.ResponseWriter, r *http.Request) {
	page, err := s.findPage(r)
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	var toc docsite.TableOfContents
	if err := toc.Mount(r.Context(), s.Parser.HeadingScanner(page.HTML), nil); err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	resp := &TOCResponse{Visible: toc.Visible(), Offset: docsite.StickyHeaderOffset, Entries: []TOCEntry{}}
	for _, e := range toc.Entries() {
		resp.Entries = append(resp.Entries, TOCEntry{HeadingEntry: e, Indent: e.Indent()})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format := docsite.ContentFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = docsite.FormatText
	}
	if !format.Valid() {
		Error(w, r, s.Logger, docsite.Errorf(docsite.EINVALID, "unsupported format %q", format))
		return
	}

	page, err := s.findPage(r)
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	x := &docsite.ContentExtractor{
		Source: s.Parser.ContentSource(s.articleHTML(page), format),
		Logger: s.Logger,
	}
	text := x.Extract(ctx, page.Ref(s.BaseURL))

	if notModified(w, r, ETag(string(format), text)) {
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

// PromptResponse is the body of GET /api/prompt.
type PromptResponse struct {
	Prompt       string `json:"prompt"`
	AssistantURL string `json:"assistant_url"`
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	page, err := s.findPage(r)
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	x := &docsite.ContentExtractor{
		Source: s.Parser.ContentSource(s.articleHTML(page), docsite.FormatText),
		Logger: s.Logger,
	}
	writeJSON(w, http.StatusOK, &PromptResponse{
		Prompt:       x.Prompt(r.Context(), page.Ref(s.BaseURL)),
		AssistantURL: s.AssistantURL,
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	pages, err := s.Pages.FindPages(r.Context())
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}
	sections := docsite.PageSections(pages)

	// The footer carries the request time, so every download is fresh.
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+docsite.FullDocsFilename+`"`)
	_, _ = w.Write([]byte(docsite.BuildFullDocs(s.SiteTitle, sections, s.now())))
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	pages, err := s.Pages.FindPages(r.Context())
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}

	lastmod := s.BuildTime
	if lastmod.IsZero() {
		lastmod = s.now()
	}
	body, err := BuildSitemap(s.BaseURL, pages, lastmod)
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(body)
}

func (s *Server) handleWidget(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(s.renderWidget(name)))
}

// ThemeRequest is the body of PUT /api/preferences/theme. Toggle flips
// between dark and light and takes precedence over Theme.
type ThemeRequest struct {
	Theme  docsite.Theme `json:"theme"`
	Toggle bool          `json:"toggle"`
}

// ThemeResponse is the body of the theme endpoints.
type ThemeResponse struct {
	Theme docsite.Theme `json:"theme"`
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := s.Preferences.FindTheme(r.Context(), ClientIDFromContext(r.Context()))
	if err != nil {
		Error(w, r, s.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, &ThemeResponse{Theme: theme})
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := ClientIDFromContext(ctx)

	var req ThemeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10)).Decode(&req); err != nil {
		Error(w, r, s.Logger, docsite.Errorf(docsite.EINVALID, "invalid JSON body"))
		return
	}

	theme := req.Theme
	if req.Toggle {
		current, err := s.Preferences.FindTheme(ctx, clientID)
		if err != nil {
			Error(w, r, s.Logger, err)
			return
		}
		theme = current.Toggle()
	}

	if err := s.Preferences.SetTheme(ctx, clientID, theme); err != nil {
		Error(w, r, s.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, &ThemeResponse{Theme: theme})
}

// findPage returns the page named by the path query parameter, "/" when
// it is absent.
func (s *Server) findPage(r *http.Request) (*docsite.Page, error) {
	p := r.URL.Query().Get("path")
	if p == "" {
		p = "/"
	}
	if !strings.HasPrefix(p, "/") {
		return nil, docsite.Errorf(docsite.EINVALID, "path must start with /")
	}
	return s.Pages.FindPageByPath(r.Context(), p)
}

// WidgetURL returns the URL re-rendering the named widget.
func WidgetURL(name string) string {
	return "/widgets/" + url.PathEscape(name)
}
