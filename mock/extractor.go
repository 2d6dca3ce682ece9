package mock

import (
	"context"

	"github.com/fwojciec/docsite"
)

// Compile-time interface verification.
var (
	_ docsite.PageContentSource = (*PageContentSource)(nil)
	_ docsite.Clipboard         = (*Clipboard)(nil)
	_ docsite.Notifier          = (*Notifier)(nil)
	_ docsite.Assistant         = (*Assistant)(nil)
)

// PageContentSource is a mock implementation of docsite.PageContentSource.
type PageContentSource struct {
	PageTextFn func(ctx context.Context) (string, error)
}

func (s *PageContentSource) PageText(ctx context.Context) (string, error) {
	return s.PageTextFn(ctx)
}

// Clipboard is a mock implementation of docsite.Clipboard.
type Clipboard struct {
	WriteTextFn func(ctx context.Context, text string) error
}

func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	return c.WriteTextFn(ctx, text)
}

// Notifier is a mock implementation of docsite.Notifier.
type Notifier struct {
	NotifyFn func(n docsite.Notification)
}

func (n *Notifier) Notify(notification docsite.Notification) {
	n.NotifyFn(notification)
}

// Assistant is a mock implementation of docsite.Assistant.
type Assistant struct {
	AnswerFn func(ctx context.Context, prompt string) (string, error)
}

func (a *Assistant) Answer(ctx context.Context, prompt string) (string, error) {
	return a.AnswerFn(ctx, prompt)
}
