package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docsite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Pages       docsite.PageService
	Searcher    docsite.Searcher
	Records     []docsite.SearchRecord
	Preferences docsite.PreferenceService
	Parser      docsite.PageParser
	Converter   docsite.Converter
	Links       docsite.LinkExtractor
	Clipboard   docsite.Clipboard
	Navigator   docsite.Navigator
	Tabs        docsite.TabOpener
	Notifier    docsite.Notifier
	Fetcher     docsite.Fetcher
	Assistant   docsite.Assistant

	// ContentDir is the content directory given with --content, empty when
	// serving the embedded content. Reload re-reads its pages.
	ContentDir string
	Reload     func(ctx context.Context) error

	Config  Config
	Version string
	Now     func() time.Time
}

// Config is the site configuration shared by all commands.
type Config struct {
	SiteTitle    string
	BaseURL      string
	APIBaseURL   string
	AssistantURL string
}

func (d *Dependencies) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose      bool   `short:"v" help:"Enable debug logging"`
	BaseURL      string `name:"base-url" env:"DOCSITE_BASE_URL" default:"http://localhost:8080" help:"Public URL of the documentation site"`
	APIBaseURL   string `name:"api-base-url" env:"DOCSITE_API_BASE_URL" default:"https://api.example.com" help:"API base URL shown in code samples"`
	AssistantURL string `name:"assistant-url" env:"DOCSITE_ASSISTANT_URL" default:"https://chatgpt.com/" help:"External assistant opened by ask"`
	Content      string `type:"existingdir" env:"DOCSITE_CONTENT" help:"Read records.yaml and pages/ from this directory instead of the built-in content"`

	Serve    ServeCmd    `cmd:"" help:"Serve the documentation site"`
	Search   SearchCmd   `cmd:"" help:"Search the documentation index"`
	Copy     CopyCmd     `cmd:"" help:"Copy a page or its link to the clipboard"`
	Ask      AskCmd      `cmd:"" help:"Ask an assistant about a page"`
	TOC      TOCCmd      `cmd:"" name:"toc" help:"Print the outline of a page"`
	Download DownloadCmd `cmd:"" help:"Write the full documentation as Markdown"`
	Check    CheckCmd    `cmd:"" help:"Check internal links and search records"`
	MCP      MCPCmd      `cmd:"" name:"mcp" help:"Serve documentation tools over MCP on stdio"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr  string  `env:"DOCSITE_ADDR" default:":8080" help:"Listen address"`
	Rate  float64 `default:"10" help:"API requests per second per client (0 disables limiting)"`
	Burst int     `default:"20" help:"API request burst per client"`
	Watch bool    `short:"w" help:"Reload pages when files under --content change"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query       []string `arg:"" optional:"" help:"Search terms"`
	Interactive bool     `short:"i" help:"Read queries from stdin and select results by number"`
	Open        bool     `short:"o" help:"Open the first result"`
}

// CopyCmd is the "copy" subcommand.
type CopyCmd struct {
	Path     string `arg:"" help:"Page path, e.g. /api/auth"`
	Link     bool   `short:"l" help:"Copy the page URL instead of its content"`
	Markdown bool   `short:"m" help:"Convert the page to Markdown instead of plain text"`
	Remote   bool   `short:"r" help:"Read the page from the site at --base-url"`
	Render   bool   `help:"Render the remote page in a headless browser (implies --remote)"`
	Print    bool   `short:"p" help:"Print to stdout instead of copying"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Path     string `arg:"" help:"Page path, e.g. /api/auth"`
	Question string `arg:"" optional:"" help:"Question to ask (with --inline)"`
	Inline   bool   `help:"Answer in the terminal with Gemini"`
}

// TOCCmd is the "toc" subcommand.
type TOCCmd struct {
	Path   string `arg:"" help:"Page path, e.g. /api/auth"`
	Remote bool   `short:"r" help:"Read the page from the site at --base-url"`
}

// DownloadCmd is the "download" subcommand.
type DownloadCmd struct {
	Dir   string `short:"d" default:"." help:"Output directory"`
	Split bool   `help:"Also write one file per page with frontmatter"`
	Name  string `default:"pages" help:"Directory name for --split pages"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct{}

// MCPCmd is the "mcp" subcommand.
type MCPCmd struct{}
