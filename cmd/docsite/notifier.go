package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/docsite"
)

// Ensure WriterNotifier implements docsite.Notifier at compile time.
var _ docsite.Notifier = (*WriterNotifier)(nil)

// WriterNotifier prints notifications as single lines.
type WriterNotifier struct {
	W io.Writer
}

// Notify prints n. Destructive notifications are prefixed with "error: ".
func (n *WriterNotifier) Notify(note docsite.Notification) {
	prefix := ""
	if note.Variant == docsite.NotificationDestructive {
		prefix = "error: "
	}
	if note.Description == "" {
		fmt.Fprintf(n.W, "%s%s\n", prefix, note.Title)
		return
	}
	fmt.Fprintf(n.W, "%s%s: %s\n", prefix, note.Title, note.Description)
}
