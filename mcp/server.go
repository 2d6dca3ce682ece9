// Package mcp exposes the documentation to Model Context Protocol clients
// over the official go-sdk.
package mcp

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docsite"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerName is reported to clients during initialization.
const ServerName = "docsite"

// Server answers search, page and outline tool calls from the pages and
// search index.
type Server struct {
	Pages    docsite.PageService
	Searcher docsite.Searcher
	Parser   docsite.PageParser

	// BaseURL prefixes page paths in returned URLs.
	BaseURL string
	Version string
	Logger  *slog.Logger
}

// SearchDocsInput is the input of the search_docs tool.
type SearchDocsInput struct {
	Query string `json:"query" jsonschema:"Space-separated terms; every term must match"`
}

// SearchDocsOutput is the output of the search_docs tool.
type SearchDocsOutput struct {
	Query   string                 `json:"query"`
	Results []docsite.SearchRecord `json:"results"`
}

// ReadPageInput is the input of the read_page tool.
type ReadPageInput struct {
	Path   string `json:"path" jsonschema:"Page path, e.g. /api/auth"`
	Format string `json:"format,omitempty" jsonschema:"text or markdown (default text)"`
}

// ReadPageOutput is the output of the read_page tool.
type ReadPageOutput struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// PageOutlineInput is the input of the page_outline tool.
type PageOutlineInput struct {
	Path string `json:"path" jsonschema:"Page path, e.g. /api/auth"`
}

// PageOutlineOutput is the output of the page_outline tool.
type PageOutlineOutput struct {
	Path     string                 `json:"path"`
	Headings []docsite.HeadingEntry `json:"headings"`
}

// MCPServer returns an MCP server with the documentation tools registered.
func (s *Server) MCPServer() *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Version: s.Version,
		},
		nil,
	)

	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "search_docs",
			Description: "Search the wallet and authentication documentation index. Returns at most 10 records.",
		},
		s.SearchDocs,
	)
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "read_page",
			Description: "Read a documentation page as plain text or Markdown, prefixed with its title.",
		},
		s.ReadPage,
	)
	mcp.AddTool(server,
		&mcp.Tool{
			Name:        "page_outline",
			Description: "List the headings of a documentation page with their anchor ids.",
		},
		s.PageOutline,
	)
	return server
}

// Run serves the tools over t until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	s.logger().Info("mcp server ready", "name", ServerName, "version", s.Version)
	return s.MCPServer().Run(ctx, t)
}

// SearchDocs handles the search_docs tool.
func (s *Server) SearchDocs(ctx context.Context, req *mcp.CallToolRequest, in SearchDocsInput) (*mcp.CallToolResult, SearchDocsOutput, error) {
	results := s.Searcher.Search(in.Query)
	if results == nil {
		results = []docsite.SearchRecord{}
	}
	s.logger().Debug("search_docs", "query", in.Query, "results", len(results))
	return nil, SearchDocsOutput{Query: in.Query, Results: results}, nil
}

// ReadPage handles the read_page tool.
func (s *Server) ReadPage(ctx context.Context, req *mcp.CallToolRequest, in ReadPageInput) (*mcp.CallToolResult, ReadPageOutput, error) {
	format := docsite.ContentFormat(in.Format)
	if format == "" {
		format = docsite.FormatText
	}
	if !format.Valid() {
		return nil, ReadPageOutput{}, docsite.Errorf(docsite.EINVALID, "unsupported format %q", in.Format)
	}

	page, err := s.Pages.FindPageByPath(ctx, in.Path)
	if err != nil {
		return nil, ReadPageOutput{}, err
	}

	ref := page.Ref(s.BaseURL)
	x := &docsite.ContentExtractor{
		Source: s.Parser.ContentSource(page.ContentHTML(), format),
		Logger: s.Logger,
	}
	return nil, ReadPageOutput{
		Path:    page.Path,
		Title:   page.Title,
		URL:     ref.URL,
		Content: x.Extract(ctx, ref),
	}, nil
}

// PageOutline handles the page_outline tool.
func (s *Server) PageOutline(ctx context.Context, req *mcp.CallToolRequest, in PageOutlineInput) (*mcp.CallToolResult, PageOutlineOutput, error) {
	page, err := s.Pages.FindPageByPath(ctx, in.Path)
	if err != nil {
		return nil, PageOutlineOutput{}, err
	}

	headings, err := s.Parser.HeadingScanner(page.ContentHTML()).ScanHeadings(ctx)
	if err != nil {
		return nil, PageOutlineOutput{}, err
	}
	if headings == nil {
		headings = []docsite.HeadingEntry{}
	}
	return nil, PageOutlineOutput{Path: page.Path, Headings: headings}, nil
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}
