package docsite

import (
	"context"
	"strings"
	"sync"
)

// Navigator performs in-app navigation to an internal path.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// TabOpener opens an absolute URL in a new, isolated browsing context.
type TabOpener interface {
	OpenTab(ctx context.Context, url string) error
}

// KeyEvent is a document-level keydown event.
type KeyEvent struct {
	Key   string
	Meta  bool
	Ctrl  bool
	Shift bool
	Alt   bool

	prevented bool
}

// PreventDefault stops the host from applying its default action.
func (e *KeyEvent) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.prevented
}

// IsSearchShortcut reports whether e is Cmd+K or Ctrl+K.
func IsSearchShortcut(e *KeyEvent) bool {
	return (e.Meta || e.Ctrl) && strings.EqualFold(e.Key, "k")
}

// KeyListener receives key events.
type KeyListener func(e *KeyEvent)

// KeyEventSource delivers document-level key events.
type KeyEventSource interface {
	// AddKeyListener registers fn and returns a func that removes it.
	AddKeyListener(fn KeyListener) (remove func())
}

// SearchController holds the state of the search surface and routes
// selections. It is safe for concurrent use.
type SearchController struct {
	searcher Searcher
	nav      Navigator
	tabs     TabOpener

	mu      sync.Mutex
	open    bool
	query   string
	results []SearchRecord
	remove  func()
}

// NewSearchController returns a closed controller with an empty query.
func NewSearchController(searcher Searcher, nav Navigator, tabs TabOpener) *SearchController {
	return &SearchController{
		searcher: searcher,
		nav:      nav,
		tabs:     tabs,
	}
}

// Mount registers the global search shortcut on src. Mounting an already
// mounted controller replaces the previous registration.
func (c *SearchController) Mount(src KeyEventSource) {
	c.Unmount()

	remove := src.AddKeyListener(c.handleKey)

	c.mu.Lock()
	c.remove = remove
	c.mu.Unlock()
}

// Unmount removes the shortcut listener. It is safe to call more than once.
func (c *SearchController) Unmount() {
	c.mu.Lock()
	remove := c.remove
	c.remove = nil
	c.mu.Unlock()

	if remove != nil {
		remove()
	}
}

// Mounted reports whether the shortcut listener is registered.
func (c *SearchController) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remove != nil
}

func (c *SearchController) handleKey(e *KeyEvent) {
	if !IsSearchShortcut(e) {
		return
	}
	e.PreventDefault()
	c.Open()
}

// Open shows the search surface.
func (c *SearchController) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = true
}

// Close hides the search surface and resets the query and results.
func (c *SearchController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
}

func (c *SearchController) closeLocked() {
	c.open = false
	c.query = ""
	c.results = nil
}

// IsOpen reports whether the search surface is shown.
func (c *SearchController) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// SetQuery replaces the query and recomputes the results in full.
func (c *SearchController) SetQuery(query string) []SearchRecord {
	results := c.searcher.Search(query)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
	c.results = results
	return cloneRecords(results)
}

// Query returns the current query.
func (c *SearchController) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Results returns the results for the current query.
func (c *SearchController) Results() []SearchRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneRecords(c.results)
}

// Select closes the surface and dispatches r: external records open in a
// new tab, all other kinds navigate in place.
func (c *SearchController) Select(ctx context.Context, r SearchRecord) error {
	c.Close()

	if r.IsExternal() {
		return c.tabs.OpenTab(ctx, r.URL)
	}
	return c.nav.Navigate(ctx, r.URL)
}

func cloneRecords(records []SearchRecord) []SearchRecord {
	if records == nil {
		return nil
	}
	out := make([]SearchRecord, len(records))
	copy(out, records)
	return out
}
