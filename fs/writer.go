// Package fs writes exported documentation to the local file system.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fwojciec/docsite"
	"gopkg.in/yaml.v3"
)

// URLToPath converts a page URL or path to a relative file path.
// Example: https://docs.example.com/api/wallet → api/wallet.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", docsite.Errorf(docsite.EINVALID, "invalid page url %q: %v", rawURL, err)
	}

	path := u.Path

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")
	if slices.Contains(strings.Split(path, "/"), "..") {
		return "", docsite.Errorf(docsite.EINVALID, "path traversal in page url %q", rawURL)
	}

	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}
	return path + ".md", nil
}

type frontmatter struct {
	Source    string    `yaml:"source"`
	Title     string    `yaml:"title"`
	Summary   string    `yaml:"summary,omitempty"`
	Category  string    `yaml:"category,omitempty"`
	Generated time.Time `yaml:"generated"`
}

// FormatPage formats a page's markdown with YAML frontmatter. source is the
// absolute URL the page is published at.
func FormatPage(page *docsite.Page, source string, generated time.Time) (string, error) {
	meta, err := yaml.Marshal(frontmatter{
		Source:    source,
		Title:     page.Title,
		Summary:   page.Summary,
		Category:  page.Category,
		Generated: generated.UTC(),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString(strings.TrimSpace(page.Markdown))
	b.WriteString("\n")
	return b.String(), nil
}

// Writer writes the full-docs bundle to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteFullDocs writes content to FullDocsFilename in the base directory and
// returns the path written.
func (w *Writer) WriteFullDocs(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, docsite.FullDocsFilename)
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
