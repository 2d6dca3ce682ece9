// Package clipboard writes to the system clipboard using atotto/clipboard.
package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/docsite"
)

// Ensure Clipboard implements docsite.Clipboard at compile time.
var _ docsite.Clipboard = (*Clipboard)(nil)

// Clipboard is the system clipboard.
type Clipboard struct {
	// WriteAll performs the write. Defaults to the system clipboard.
	WriteAll func(text string) error
}

// NewClipboard returns a Clipboard backed by the system clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{WriteAll: clipboard.WriteAll}
}

// Supported reports whether a system clipboard utility is available.
func Supported() bool {
	return !clipboard.Unsupported
}

// WriteText writes text to the clipboard. Failures are reported as
// ECLIPBOARD.
func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.WriteAll(text); err != nil {
		return docsite.Errorf(docsite.ECLIPBOARD, "clipboard write failed: %v", err)
	}
	return nil
}
