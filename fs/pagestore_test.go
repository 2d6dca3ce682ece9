package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func savePage(t *testing.T, store *fs.FileStore, path, title string) {
	t.Helper()
	err := store.Save(context.Background(), &docsite.Page{
		Path:     path,
		Title:    title,
		Markdown: "# " + title,
	})
	require.NoError(t, err)
}

func TestFileStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output", "https://docs.example.com")

	savePage(t, store, "/api/wallet", "Wallet API")

	_, err := os.Stat(filepath.Join(base, "output.tmp", "api", "wallet.md"))
	require.NoError(t, err, "file should exist in temp directory")

	_, err = os.Stat(filepath.Join(base, "output", "api", "wallet.md"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestFileStore_CommitMovesFromTempToFinal(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output", "https://docs.example.com")
	savePage(t, store, "/quick-start", "Quick Start")

	require.NoError(t, store.Commit())

	content, err := os.ReadFile(filepath.Join(store.Dir(), "quick-start.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "source: https://docs.example.com/quick-start")
	assert.Contains(t, string(content), "# Quick Start")

	_, err = os.Stat(filepath.Join(base, "output.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestFileStore_CommitReplacesPreviousExport(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	first := fs.NewFileStore(base, "output", "https://docs.example.com")
	savePage(t, first, "/old", "Old")
	require.NoError(t, first.Commit())

	second := fs.NewFileStore(base, "output", "https://docs.example.com")
	savePage(t, second, "/new", "New")
	require.NoError(t, second.Commit())

	_, err := os.Stat(filepath.Join(base, "output", "old.md"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(base, "output", "new.md"))
	assert.NoError(t, err)
}

func TestFileStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewFileStore(base, "output", "https://docs.example.com")
	savePage(t, store, "/a", "A")

	require.NoError(t, store.Abort())

	_, err := os.Stat(filepath.Join(base, "output.tmp"))
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")
	_, err = os.Stat(filepath.Join(base, "output"))
	assert.True(t, os.IsNotExist(err), "final directory should not exist after abort")
}

func TestFileStore_RejectsInvalidPages(t *testing.T) {
	t.Parallel()

	store := fs.NewFileStore(t.TempDir(), "output", "https://docs.example.com")

	err := store.Save(context.Background(), &docsite.Page{Path: "/../../../etc/passwd", Title: "Malicious"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path traversal")

	err = store.Save(context.Background(), &docsite.Page{Path: "/x"})
	assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err))
}
