package docsite

import (
	"context"
	"strconv"
	"sync"
)

// Heading levels included in the table of contents.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 4
)

// StickyHeaderOffset is the height in pixels of the fixed page header.
// Scroll targets land just below it and visibility tracking ignores the
// area it covers.
const StickyHeaderOffset = 80

// HeadingEntry is one entry of the in-page outline.
type HeadingEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Level int    `json:"level"`
}

// Indent returns the outline indentation for the entry, in steps of 12px
// per level below the top.
func (h HeadingEntry) Indent() int {
	return (h.Level - MinHeadingLevel) * 12
}

// HeadingID returns existing when it is set, otherwise an id synthesized
// from the heading's position.
func HeadingID(existing string, index int) string {
	if existing != "" {
		return existing
	}
	return "heading-" + strconv.Itoa(index)
}

// HeadingScanner lists the headings of the current page in document order,
// assigning ids with HeadingID.
type HeadingScanner interface {
	ScanHeadings(ctx context.Context) ([]HeadingEntry, error)
}

// VisibilityEvent reports that a heading entered or left the viewport.
type VisibilityEvent struct {
	ID           string
	Intersecting bool
}

// WatchOptions configures a VisibilityWatcher subscription.
type WatchOptions struct {
	// TopMargin is excluded from the top of the viewport.
	TopMargin int
}

// VisibilityWatcher observes viewport intersection of anchors.
type VisibilityWatcher interface {
	// Observe delivers events for ids to fn until stop is called.
	Observe(ids []string, opts WatchOptions, fn func(VisibilityEvent)) (stop func())
}

// ScrollRequest asks the viewport to bring a heading into view.
type ScrollRequest struct {
	ID     string
	Offset int
	Smooth bool
}

// Scroller scrolls the main viewport.
type Scroller interface {
	ScrollTo(ctx context.Context, req ScrollRequest) error
}

// TableOfContents is the per-page outline with the active heading tracked.
// It is safe for concurrent use.
type TableOfContents struct {
	mu      sync.Mutex
	entries []HeadingEntry
	active  string
	stop    func()
}

// Mount scans the page headings and, when there are any, starts tracking
// visibility through watcher. A nil watcher disables active tracking.
func (t *TableOfContents) Mount(ctx context.Context, scanner HeadingScanner, watcher VisibilityWatcher) error {
	t.Unmount()

	entries, err := scanner.ScanHeadings(ctx)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.entries = entries
	t.active = ""
	t.mu.Unlock()

	if len(entries) == 0 || watcher == nil {
		return nil
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	stop := watcher.Observe(ids, WatchOptions{TopMargin: StickyHeaderOffset}, t.observe)

	t.mu.Lock()
	t.stop = stop
	t.mu.Unlock()
	return nil
}

// Unmount stops visibility tracking and discards the outline.
func (t *TableOfContents) Unmount() {
	t.mu.Lock()
	stop := t.stop
	t.stop = nil
	t.entries = nil
	t.active = ""
	t.mu.Unlock()

	if stop != nil {
		stop()
	}
}

func (t *TableOfContents) observe(e VisibilityEvent) {
	if !e.Intersecting {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.indexOf(e.ID) >= 0 {
		t.active = e.ID
	}
}

// Visible reports whether the outline is shown. It is hidden when the page
// has no headings.
func (t *TableOfContents) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries) > 0
}

// Entries returns the outline entries in document order.
func (t *TableOfContents) Entries() []HeadingEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]HeadingEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Active returns the id of the active heading, or "" before the first
// intersection event.
func (t *TableOfContents) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// ScrollTo smoothly scrolls to the heading with id, leaving room for the
// sticky header.
func (t *TableOfContents) ScrollTo(ctx context.Context, scroller Scroller, id string) error {
	t.mu.Lock()
	found := t.indexOf(id) >= 0
	t.mu.Unlock()
	if !found {
		return Errorf(ENOTFOUND, "heading %q not found", id)
	}
	return scroller.ScrollTo(ctx, ScrollRequest{ID: id, Offset: StickyHeaderOffset, Smooth: true})
}

func (t *TableOfContents) indexOf(id string) int {
	for i, e := range t.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
