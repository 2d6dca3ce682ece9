package fsnotify_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Run(t *testing.T) {
	t.Parallel()

	t.Run("reloads after a file changes", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "pages", "api"), 0o755))

		var reloads atomic.Int32
		w := &fsnotify.Watcher{
			Root:     root,
			Debounce: 10 * time.Millisecond,
			Reload: func(ctx context.Context) error {
				reloads.Add(1)
				return nil
			},
		}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- w.Run(ctx) }()

		// Writes repeat until the watcher has registered the tree.
		page := filepath.Join(root, "pages", "api", "auth.md")
		assert.Eventually(t, func() bool {
			_ = os.WriteFile(page, []byte("---\ntitle: Auth\n---\nBody"), 0o644)
			return reloads.Load() > 0
		}, 5*time.Second, 50*time.Millisecond)

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("watcher did not stop")
		}
	})

	t.Run("keeps running when reload fails", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		var calls atomic.Int32
		w := &fsnotify.Watcher{
			Root:     root,
			Debounce: 10 * time.Millisecond,
			Reload: func(ctx context.Context) error {
				calls.Add(1)
				return docsite.Errorf(docsite.EINVALID, "bad frontmatter")
			},
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = w.Run(ctx) }()

		page := filepath.Join(root, "index.md")
		assert.Eventually(t, func() bool {
			_ = os.WriteFile(page, []byte(time.Now().String()), 0o644)
			return calls.Load() >= 2
		}, 5*time.Second, 50*time.Millisecond)
	})

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()

		w := &fsnotify.Watcher{
			Root:   filepath.Join(t.TempDir(), "missing"),
			Reload: func(ctx context.Context) error { return nil },
		}
		err := w.Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err))
	})
}
