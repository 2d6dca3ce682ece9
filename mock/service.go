package mock

import (
	"context"

	"github.com/fwojciec/docsite"
)

// Compile-time interface verification.
var (
	_ docsite.PageService       = (*PageService)(nil)
	_ docsite.PreferenceService = (*PreferenceService)(nil)
	_ docsite.Renderer          = (*Renderer)(nil)
)

// PageService is a mock implementation of docsite.PageService.
type PageService struct {
	FindPageByPathFn func(ctx context.Context, path string) (*docsite.Page, error)
	FindPagesFn      func(ctx context.Context) ([]*docsite.Page, error)
}

func (s *PageService) FindPageByPath(ctx context.Context, path string) (*docsite.Page, error) {
	return s.FindPageByPathFn(ctx, path)
}

func (s *PageService) FindPages(ctx context.Context) ([]*docsite.Page, error) {
	return s.FindPagesFn(ctx)
}

// PreferenceService is a mock implementation of docsite.PreferenceService.
type PreferenceService struct {
	FindThemeFn func(ctx context.Context, clientID string) (docsite.Theme, error)
	SetThemeFn  func(ctx context.Context, clientID string, theme docsite.Theme) error
}

func (s *PreferenceService) FindTheme(ctx context.Context, clientID string) (docsite.Theme, error) {
	return s.FindThemeFn(ctx, clientID)
}

func (s *PreferenceService) SetTheme(ctx context.Context, clientID string, theme docsite.Theme) error {
	return s.SetThemeFn(ctx, clientID, theme)
}

// Renderer is a mock implementation of docsite.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
