package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/docsite"
)

// Compile-time interface verification.
var (
	_ docsite.HeadingScanner    = (*HeadingScanner)(nil)
	_ docsite.Scroller          = (*Scroller)(nil)
	_ docsite.VisibilityWatcher = (*VisibilityWatcher)(nil)
)

// HeadingScanner is a mock implementation of docsite.HeadingScanner.
type HeadingScanner struct {
	ScanHeadingsFn func(ctx context.Context) ([]docsite.HeadingEntry, error)
}

func (s *HeadingScanner) ScanHeadings(ctx context.Context) ([]docsite.HeadingEntry, error) {
	return s.ScanHeadingsFn(ctx)
}

// Scroller is a mock implementation of docsite.Scroller.
type Scroller struct {
	ScrollToFn func(ctx context.Context, req docsite.ScrollRequest) error
}

func (s *Scroller) ScrollTo(ctx context.Context, req docsite.ScrollRequest) error {
	return s.ScrollToFn(ctx, req)
}

// VisibilityWatcher is a fake docsite.VisibilityWatcher driven by the test
// through Emit.
type VisibilityWatcher struct {
	mu      sync.Mutex
	ids     []string
	opts    docsite.WatchOptions
	fn      func(docsite.VisibilityEvent)
	stopped bool
}

func (w *VisibilityWatcher) Observe(ids []string, opts docsite.WatchOptions, fn func(docsite.VisibilityEvent)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ids = ids
	w.opts = opts
	w.fn = fn
	w.stopped = false
	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.fn = nil
		w.stopped = true
	}
}

// Emit delivers e if the subscription is active.
func (w *VisibilityWatcher) Emit(e docsite.VisibilityEvent) {
	w.mu.Lock()
	fn := w.fn
	w.mu.Unlock()
	if fn != nil {
		fn(e)
	}
}

// ObservedIDs returns the ids passed to Observe.
func (w *VisibilityWatcher) ObservedIDs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ids
}

// Options returns the options passed to Observe.
func (w *VisibilityWatcher) Options() docsite.WatchOptions {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.opts
}

// Stopped reports whether the subscription was stopped.
func (w *VisibilityWatcher) Stopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}
