package docsite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticHeadings(entries ...docsite.HeadingEntry) *mock.HeadingScanner {
	return &mock.HeadingScanner{
		ScanHeadingsFn: func(context.Context) ([]docsite.HeadingEntry, error) {
			return entries, nil
		},
	}
}

func TestHeadingID(t *testing.T) {
	t.Parallel()

	t.Run("preserves an existing id", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "install", docsite.HeadingID("install", 3))
	})

	t.Run("synthesizes from position when missing", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "heading-3", docsite.HeadingID("", 3))
	})
}

func TestHeadingEntry_Indent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, docsite.HeadingEntry{Level: 1}.Indent())
	assert.Equal(t, 12, docsite.HeadingEntry{Level: 2}.Indent())
	assert.Equal(t, 36, docsite.HeadingEntry{Level: 4}.Indent())
}

func TestTableOfContents_Mount(t *testing.T) {
	t.Parallel()

	t.Run("is hidden when the page has no headings", func(t *testing.T) {
		t.Parallel()

		var toc docsite.TableOfContents
		watcher := &mock.VisibilityWatcher{}

		err := toc.Mount(context.Background(), staticHeadings(), watcher)

		require.NoError(t, err)
		assert.False(t, toc.Visible())
		assert.Nil(t, watcher.ObservedIDs())
	})

	t.Run("observes every heading with the sticky header margin", func(t *testing.T) {
		t.Parallel()

		var toc docsite.TableOfContents
		watcher := &mock.VisibilityWatcher{}

		err := toc.Mount(context.Background(), staticHeadings(
			docsite.HeadingEntry{ID: "install", Title: "Install", Level: 2},
			docsite.HeadingEntry{ID: "heading-1", Title: "Configure", Level: 2},
		), watcher)

		require.NoError(t, err)
		assert.True(t, toc.Visible())
		assert.Equal(t, []string{"install", "heading-1"}, watcher.ObservedIDs())
		assert.Equal(t, docsite.StickyHeaderOffset, watcher.Options().TopMargin)
		assert.Empty(t, toc.Active())
	})

	t.Run("propagates scanner errors", func(t *testing.T) {
		t.Parallel()

		var toc docsite.TableOfContents
		scanner := &mock.HeadingScanner{
			ScanHeadingsFn: func(context.Context) ([]docsite.HeadingEntry, error) {
				return nil, errors.New("parse failed")
			},
		}

		err := toc.Mount(context.Background(), scanner, nil)

		require.Error(t, err)
		assert.False(t, toc.Visible())
	})
}

func TestTableOfContents_Active(t *testing.T) {
	t.Parallel()

	mount := func(t *testing.T) (*docsite.TableOfContents, *mock.VisibilityWatcher) {
		t.Helper()
		toc := &docsite.TableOfContents{}
		watcher := &mock.VisibilityWatcher{}
		require.NoError(t, toc.Mount(context.Background(), staticHeadings(
			docsite.HeadingEntry{ID: "a", Title: "A", Level: 1},
			docsite.HeadingEntry{ID: "b", Title: "B", Level: 2},
			docsite.HeadingEntry{ID: "c", Title: "C", Level: 3},
		), watcher))
		return toc, watcher
	}

	t.Run("most recent intersecting event wins", func(t *testing.T) {
		t.Parallel()

		toc, watcher := mount(t)

		watcher.Emit(docsite.VisibilityEvent{ID: "a", Intersecting: true})
		watcher.Emit(docsite.VisibilityEvent{ID: "c", Intersecting: true})
		watcher.Emit(docsite.VisibilityEvent{ID: "b", Intersecting: true})

		assert.Equal(t, "b", toc.Active())
	})

	t.Run("non-intersecting events keep the active entry", func(t *testing.T) {
		t.Parallel()

		toc, watcher := mount(t)

		watcher.Emit(docsite.VisibilityEvent{ID: "a", Intersecting: true})
		watcher.Emit(docsite.VisibilityEvent{ID: "a", Intersecting: false})

		assert.Equal(t, "a", toc.Active())
	})

	t.Run("ignores unknown ids", func(t *testing.T) {
		t.Parallel()

		toc, watcher := mount(t)

		watcher.Emit(docsite.VisibilityEvent{ID: "zzz", Intersecting: true})

		assert.Empty(t, toc.Active())
	})

	t.Run("unmount stops the watcher", func(t *testing.T) {
		t.Parallel()

		toc, watcher := mount(t)

		toc.Unmount()
		watcher.Emit(docsite.VisibilityEvent{ID: "a", Intersecting: true})

		assert.True(t, watcher.Stopped())
		assert.Empty(t, toc.Active())
		assert.False(t, toc.Visible())
	})
}

func TestTableOfContents_ScrollTo(t *testing.T) {
	t.Parallel()

	t.Run("smooth scrolls below the sticky header", func(t *testing.T) {
		t.Parallel()

		var toc docsite.TableOfContents
		require.NoError(t, toc.Mount(context.Background(), staticHeadings(
			docsite.HeadingEntry{ID: "install", Title: "Install", Level: 2},
		), nil))

		var got docsite.ScrollRequest
		scroller := &mock.Scroller{
			ScrollToFn: func(_ context.Context, req docsite.ScrollRequest) error {
				got = req
				return nil
			},
		}

		err := toc.ScrollTo(context.Background(), scroller, "install")

		require.NoError(t, err)
		assert.Equal(t, docsite.ScrollRequest{ID: "install", Offset: docsite.StickyHeaderOffset, Smooth: true}, got)
	})

	t.Run("returns not found for unknown heading", func(t *testing.T) {
		t.Parallel()

		var toc docsite.TableOfContents

		err := toc.ScrollTo(context.Background(), &mock.Scroller{}, "missing")

		require.Error(t, err)
		assert.Equal(t, docsite.ENOTFOUND, docsite.ErrorCode(err))
	})
}
