package http

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/fwojciec/docsite"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout bounds graceful shutdown in ListenAndServe.
const ShutdownTimeout = 5 * time.Second

//go:embed templates static
var assets embed.FS

var layout = template.Must(template.New("layout.html").ParseFS(assets, "templates/layout.html"))

// widgetPlaceholder matches the markers page markdown uses for interactive
// widgets.
var widgetPlaceholder = regexp.MustCompile(`<div data-widget="([a-z0-9-]+)"></div>`)

// Server serves the documentation site.
type Server struct {
	router chi.Router

	// Addr is the address ListenAndServe listens on.
	Addr string

	Pages       docsite.PageService
	Searcher    docsite.Searcher
	Preferences docsite.PreferenceService
	Parser      docsite.PageParser
	Widgets     map[string]docsite.RenderFunc

	// Limiter throttles /api requests per client. Optional.
	Limiter *ClientLimiter

	SiteTitle    string
	BaseURL      string
	AssistantURL string

	// BuildTime is reported as the sitemap lastmod.
	BuildTime time.Time

	Logger *slog.Logger
	Now    func() time.Time
}

// NewServer returns a Server with its routes registered. Services are
// assigned to the exported fields before serving.
func NewServer() *Server {
	s := &Server{
		SiteTitle:    "Documentation",
		AssistantURL: docsite.DefaultAssistantURL,
		Logger:       slog.New(slog.DiscardHandler),
		Now:          time.Now,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(ClientID)

	static, _ := fs.Sub(assets, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Get("/health", s.handleHealth)
	r.Get("/sitemap.xml", s.handleSitemap)
	r.Get("/download", s.handleDownload)
	r.Get("/widgets/{name}", s.handleWidget)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.rateLimit)
		r.Get("/search", s.handleSearch)
		r.Get("/toc", s.handleTOC)
		r.Get("/content", s.handleContent)
		r.Get("/prompt", s.handlePrompt)
		r.Get("/preferences/theme", s.handleGetTheme)
		r.Put("/preferences/theme", s.handleSetTheme)
	})

	r.Get("/*", s.handlePage)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on Addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.Logger.Info("listening", "addr", s.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// logRequests reads Logger per request so it may be set after NewServer.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		RequestLogger(s.Logger)(next).ServeHTTP(w, r)
	})
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Limiter == nil {
			next.ServeHTTP(w, r)
			return
		}
		s.Limiter.Middleware(next).ServeHTTP(w, r)
	})
}

func (s *Server) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// renderWidget runs the named widget inside a render boundary.
func (s *Server) renderWidget(name string) string {
	boundary := &docsite.RenderBoundary{
		RetryURL: WidgetURL,
		Logger:   s.Logger,
	}
	fn, ok := s.Widgets[name]
	if !ok {
		fn = func() (string, error) {
			return "", docsite.Errorf(docsite.ENOTFOUND, "unknown widget %q", name)
		}
	}
	out, _ := boundary.Render(name, fn)
	return out
}

// articleHTML is the content region of a page as served: the action menu
// followed by the page body with widgets rendered.
func (s *Server) articleHTML(page *docsite.Page) string {
	body := widgetPlaceholder.ReplaceAllStringFunc(page.HTML, func(m string) string {
		name := widgetPlaceholder.FindStringSubmatch(m)[1]
		return `<div data-widget="` + name + `">` + s.renderWidget(name) + `</div>`
	})

	var buf bytes.Buffer
	buf.WriteString(`<article class="page-content" data-page-content>`)
	buf.WriteString(actionMenu)
	buf.WriteString(body)
	buf.WriteString(`</article>`)
	return buf.String()
}

const actionMenu = `<div class="action-menu" data-action-menu>` +
	`<button type="button" data-action="copy-page">Copy page</button>` +
	`<button type="button" data-action="copy-link">Copy link</button>` +
	`<button type="button" data-action="ask-assistant">Ask assistant</button>` +
	`<a href="/download" download>Download full docs</a>` +
	`</div>`
