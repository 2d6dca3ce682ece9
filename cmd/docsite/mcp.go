package main

import (
	docsitemcp "github.com/fwojciec/docsite/mcp"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Run executes the mcp command. Stdout carries the protocol, so logs go to
// stderr only.
func (c *MCPCmd) Run(deps *Dependencies) error {
	s := &docsitemcp.Server{
		Pages:    deps.Pages,
		Searcher: deps.Searcher,
		Parser:   deps.Parser,
		BaseURL:  deps.Config.BaseURL,
		Version:  deps.Version,
		Logger:   deps.Logger,
	}
	return s.Run(deps.Ctx, &mcp.StdioTransport{})
}
