package fs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/docsite"
)

// FileStore writes one markdown file per page with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
	baseURL string
	now     func() time.Time
}

// NewFileStore creates a new FileStore.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
// baseURL is recorded as the source of every page.
func NewFileStore(baseDir, name, baseURL string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		baseURL: baseURL,
		now:     time.Now,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Dir returns the directory pages end up in after Commit.
func (s *FileStore) Dir() string {
	return s.finalDir()
}

// Save writes page to the temporary directory.
func (s *FileStore) Save(ctx context.Context, page *docsite.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := page.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(page.Path)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatPage(page, s.baseURL+page.Path, s.now())
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Commit replaces the final directory with the saved pages.
func (s *FileStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved pages.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
