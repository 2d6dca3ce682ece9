package docsite

import (
	"fmt"
	"html"
	"log/slog"
)

// RenderFunc renders an interactive widget to HTML.
type RenderFunc func() (string, error)

// RenderBoundary contains failures of widget rendering. A failing widget is
// replaced by a static card explaining the failure with a retry control.
type RenderBoundary struct {
	// RetryURL returns the URL that re-attempts rendering the named widget.
	RetryURL func(name string) string

	// Logger receives caught render errors. Optional.
	Logger *slog.Logger
}

// Render runs fn and returns its output. If fn returns an error or panics,
// the fallback card is returned instead and failed is true.
func (b *RenderBoundary) Render(name string, fn RenderFunc) (out string, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			out, failed = b.fallback(name, fmt.Errorf("panic: %v", r)), true
		}
	}()

	out, err := fn()
	if err != nil {
		return b.fallback(name, err), true
	}
	return out, false
}

func (b *RenderBoundary) fallback(name string, err error) string {
	if b.Logger != nil {
		b.Logger.Error("widget render failed", "widget", name, "err", err)
	}

	retry := "?"
	if b.RetryURL != nil {
		retry = b.RetryURL(name)
	}
	return fmt.Sprintf(`<div class="widget-error" role="alert" data-widget="%s">`+
		`<p>This interactive example could not be displayed. The rest of the page is unaffected.</p>`+
		`<a class="widget-retry" href="%s" data-retry>Retry</a></div>`,
		html.EscapeString(name), html.EscapeString(retry))
}
