package main

import (
	"github.com/fwojciec/docsite/content"
	"github.com/fwojciec/docsite/fsnotify"
	docsitehttp "github.com/fwojciec/docsite/http"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := docsitehttp.NewServer()
	s.Addr = c.Addr
	s.Pages = deps.Pages
	s.Searcher = deps.Searcher
	s.Preferences = deps.Preferences
	s.Parser = deps.Parser
	s.Widgets = docsitehttp.DefaultWidgets(deps.Config.APIBaseURL)
	s.SiteTitle = deps.Config.SiteTitle
	if s.SiteTitle == "" {
		s.SiteTitle = content.SiteTitle
	}
	s.BaseURL = deps.Config.BaseURL
	s.AssistantURL = deps.Config.AssistantURL
	s.BuildTime = deps.now()
	if deps.Logger != nil {
		s.Logger = deps.Logger
	}
	if c.Rate > 0 {
		s.Limiter = docsitehttp.NewClientLimiter(c.Rate, c.Burst)
	}

	if !c.Watch {
		return s.ListenAndServe(deps.Ctx)
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		return s.ListenAndServe(ctx)
	})
	g.Go(func() error {
		w := &fsnotify.Watcher{
			Root:   deps.ContentDir,
			Reload: deps.Reload,
			Logger: deps.Logger,
		}
		return w.Run(ctx)
	})
	return g.Wait()
}
