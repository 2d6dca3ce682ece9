// Package slog provides logging decorators for docsite services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsite"
)

// Ensure the decorators implement their interfaces.
var (
	_ docsite.Searcher          = (*LoggingSearcher)(nil)
	_ docsite.Clipboard         = (*LoggingClipboard)(nil)
	_ docsite.PageContentSource = (*LoggingContentSource)(nil)
	_ docsite.Assistant         = (*LoggingAssistant)(nil)
	_ docsite.Fetcher           = (*LoggingFetcher)(nil)
	_ docsite.PreferenceService = (*LoggingPreferenceService)(nil)
)

// LoggingSearcher wraps a Searcher with debug logging of every query.
type LoggingSearcher struct {
	next   docsite.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next docsite.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the result count.
func (s *LoggingSearcher) Search(query string) (results []docsite.SearchRecord) {
	defer func(begin time.Time) {
		s.logger.Debug("search",
			"query", query,
			"results", len(results),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Search(query)
}

// LoggingClipboard wraps a Clipboard with logging.
type LoggingClipboard struct {
	next   docsite.Clipboard
	logger *slog.Logger
}

// NewLoggingClipboard creates a new LoggingClipboard.
func NewLoggingClipboard(next docsite.Clipboard, logger *slog.Logger) *LoggingClipboard {
	return &LoggingClipboard{next: next, logger: logger}
}

// WriteText delegates to the wrapped clipboard and logs the outcome.
func (c *LoggingClipboard) WriteText(ctx context.Context, text string) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("clipboard write",
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.WriteText(ctx, text)
}

// LoggingContentSource wraps a PageContentSource with logging.
type LoggingContentSource struct {
	next   docsite.PageContentSource
	logger *slog.Logger
}

// NewLoggingContentSource creates a new LoggingContentSource.
func NewLoggingContentSource(next docsite.PageContentSource, logger *slog.Logger) *LoggingContentSource {
	return &LoggingContentSource{next: next, logger: logger}
}

// PageText delegates to the wrapped source and logs the extracted size.
func (s *LoggingContentSource) PageText(ctx context.Context) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("page text",
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.PageText(ctx)
}

// LoggingAssistant wraps an Assistant with logging.
type LoggingAssistant struct {
	next   docsite.Assistant
	logger *slog.Logger
}

// NewLoggingAssistant creates a new LoggingAssistant.
func NewLoggingAssistant(next docsite.Assistant, logger *slog.Logger) *LoggingAssistant {
	return &LoggingAssistant{next: next, logger: logger}
}

// Answer delegates to the wrapped assistant and logs prompt and answer sizes.
func (a *LoggingAssistant) Answer(ctx context.Context, prompt string) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("assistant answer",
			"prompt_bytes", len(prompt),
			"answer_bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Answer(ctx, prompt)
}

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   docsite.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docsite.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// LoggingPreferenceService wraps a PreferenceService with logging.
type LoggingPreferenceService struct {
	next   docsite.PreferenceService
	logger *slog.Logger
}

// NewLoggingPreferenceService creates a new LoggingPreferenceService.
func NewLoggingPreferenceService(next docsite.PreferenceService, logger *slog.Logger) *LoggingPreferenceService {
	return &LoggingPreferenceService{next: next, logger: logger}
}

// FindTheme delegates to the wrapped service.
func (s *LoggingPreferenceService) FindTheme(ctx context.Context, clientID string) (theme docsite.Theme, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find theme",
			"client", clientID,
			"theme", theme,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindTheme(ctx, clientID)
}

// SetTheme delegates to the wrapped service.
func (s *LoggingPreferenceService) SetTheme(ctx context.Context, clientID string, theme docsite.Theme) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("set theme",
			"client", clientID,
			"theme", theme,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SetTheme(ctx, clientID, theme)
}
