package main

import (
	"context"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/browser"
	"github.com/fwojciec/docsite/clipboard"
	"github.com/fwojciec/docsite/content"
	"github.com/fwojciec/docsite/gemini"
	"github.com/fwojciec/docsite/goldmark"
	"github.com/fwojciec/docsite/goquery"
	"github.com/fwojciec/docsite/htmltomarkdown"
	docsitehttp "github.com/fwojciec/docsite/http"
	"github.com/fwojciec/docsite/rod"
	docsiteslog "github.com/fwojciec/docsite/slog"
	"github.com/fwojciec/docsite/sqlite"
	"google.golang.org/genai"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database holding reader preferences. Opened by serve only.
	DB *sqlite.DB

	// Content holds records.yaml and the pages. Defaults to the embedded
	// documentation.
	Content iofs.FS

	// Stdin feeds interactive search.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		Content: content.FS(),
		Stdin:   os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdin:   m.Stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Version: version,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsite"),
		kong.Description("Wallet and authentication documentation site."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsite --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger
	deps.Config = Config{
		SiteTitle:    content.SiteTitle,
		BaseURL:      strings.TrimRight(cli.BaseURL, "/"),
		APIBaseURL:   cli.APIBaseURL,
		AssistantURL: cli.AssistantURL,
	}

	// Pages and search index are served from the embedded content unless a
	// directory is given.
	if cli.Content != "" {
		m.Content = os.DirFS(cli.Content)
		deps.ContentDir = cli.Content
	}
	lib := content.NewLibrary(m.Content, &goquery.HeadingRenderer{Renderer: goldmark.NewRenderer()})
	lib.APIBaseURL = cli.APIBaseURL
	if err := lib.Load(ctx); err != nil {
		return fmt.Errorf("failed to load pages: %w", err)
	}
	records, err := content.LoadRecords(m.Content)
	if err != nil {
		return fmt.Errorf("failed to load search records: %w", err)
	}
	index, err := docsite.NewSearchIndex(records)
	if err != nil {
		return fmt.Errorf("failed to build search index: %w", err)
	}

	opener := browser.NewOpener(deps.Config.BaseURL)
	deps.Pages = lib
	deps.Reload = lib.Load
	deps.Searcher = docsiteslog.NewLoggingSearcher(index, logger)
	deps.Records = records
	deps.Links = &goquery.LinkExtractor{BaseURL: deps.Config.BaseURL}
	deps.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(deps.Config.BaseURL))
	deps.Parser = &goquery.Parser{Converter: deps.Converter}
	deps.Clipboard = docsiteslog.NewLoggingClipboard(clipboard.NewClipboard(), logger)
	deps.Navigator = opener
	deps.Tabs = opener
	deps.Notifier = &WriterNotifier{W: stderr}

	switch cmd {
	case "serve":
		if cli.Serve.Watch && deps.ContentDir == "" {
			return docsite.Errorf(docsite.EINVALID, "--watch requires --content")
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DOCSITE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		deps.Preferences = docsiteslog.NewLoggingPreferenceService(sqlite.NewPreferenceService(m.DB), logger)

	case "copy", "toc":
		remote := cli.Copy.Remote || cli.Copy.Render || cli.TOC.Remote
		if !remote {
			break
		}
		var fetcher docsite.Fetcher = docsitehttp.NewFetcher()
		if cli.Copy.Render {
			f, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		}
		deps.Fetcher = docsiteslog.NewLoggingFetcher(fetcher, logger)
		defer deps.Fetcher.Close()

	case "ask":
		if !cli.Ask.Inline {
			break
		}
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		deps.Assistant = docsiteslog.NewLoggingAssistant(gemini.NewAssistant(client), logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DOCSITE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docsite.db"
	}
	dir := filepath.Join(home, ".docsite")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docsite.db")
}
