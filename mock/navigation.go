package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/docsite"
)

// Compile-time interface verification.
var (
	_ docsite.Navigator      = (*Navigator)(nil)
	_ docsite.TabOpener      = (*TabOpener)(nil)
	_ docsite.Searcher       = (*Searcher)(nil)
	_ docsite.KeyEventSource = (*KeyEventSource)(nil)
)

// Navigator is a mock implementation of docsite.Navigator.
type Navigator struct {
	NavigateFn func(ctx context.Context, path string) error
}

func (n *Navigator) Navigate(ctx context.Context, path string) error {
	return n.NavigateFn(ctx, path)
}

// TabOpener is a mock implementation of docsite.TabOpener.
type TabOpener struct {
	OpenTabFn func(ctx context.Context, url string) error
}

func (o *TabOpener) OpenTab(ctx context.Context, url string) error {
	return o.OpenTabFn(ctx, url)
}

// Searcher is a mock implementation of docsite.Searcher.
type Searcher struct {
	SearchFn func(query string) []docsite.SearchRecord
}

func (s *Searcher) Search(query string) []docsite.SearchRecord {
	return s.SearchFn(query)
}

// KeyEventSource is a fake docsite.KeyEventSource driven by the test
// through Dispatch.
type KeyEventSource struct {
	mu        sync.Mutex
	next      int
	listeners map[int]docsite.KeyListener
}

func (s *KeyEventSource) AddKeyListener(fn docsite.KeyListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listeners == nil {
		s.listeners = make(map[int]docsite.KeyListener)
	}
	id := s.next
	s.next++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Dispatch delivers e to every registered listener.
func (s *KeyEventSource) Dispatch(e *docsite.KeyEvent) {
	s.mu.Lock()
	listeners := make([]docsite.KeyListener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(e)
	}
}

// ListenerCount returns the number of registered listeners.
func (s *KeyEventSource) ListenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}
