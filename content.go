package docsite

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"
)

// PromptBudget is the number of characters of page text embedded in an
// assistant prompt.
const PromptBudget = 2000

// TruncationMarker is appended to page text cut at PromptBudget.
const TruncationMarker = "..."

// DefaultCopiedResetDelay is how long the "copied" state lasts.
const DefaultCopiedResetDelay = 2 * time.Second

// DefaultAssistantURL is the external chat tool opened by AskAssistant.
const DefaultAssistantURL = "https://chatgpt.com/"

// PageContentSource provides the visible text of the current page.
type PageContentSource interface {
	PageText(ctx context.Context) (string, error)
}

// ContentFormat selects the representation produced by a PageContentSource.
type ContentFormat string

// Supported content formats.
const (
	FormatText     ContentFormat = "text"
	FormatMarkdown ContentFormat = "markdown"
)

// Valid reports whether f is a supported format.
func (f ContentFormat) Valid() bool {
	return f == FormatText || f == FormatMarkdown
}

// PageParser builds per-page collaborators over rendered page HTML.
type PageParser interface {
	ContentSource(html string, format ContentFormat) PageContentSource
	HeadingScanner(html string) HeadingScanner
}

// StaticContent is a PageContentSource backed by a fixed string.
type StaticContent string

// PageText returns the string itself.
func (s StaticContent) PageText(ctx context.Context) (string, error) {
	return string(s), nil
}

// Clipboard writes plain UTF-8 text to the system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// NotificationVariant selects the styling of a notification.
type NotificationVariant string

// Notification variants.
const (
	NotificationDefault     NotificationVariant = "default"
	NotificationDestructive NotificationVariant = "destructive"
)

// Notification is a transient, dismissible message shown to the user.
type Notification struct {
	Title       string
	Description string
	Variant     NotificationVariant
}

// Notifier displays notifications.
type Notifier interface {
	Notify(n Notification)
}

// PageRef identifies the page an action operates on.
type PageRef struct {
	// Title is the logical page title used for the markdown heading.
	Title string

	// URL is the absolute page URL.
	URL string

	// Summary is the plain-text fallback used when extraction fails.
	Summary string
}

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// NormalizeText converts tabs to two spaces, collapses runs of three or
// more newlines to two and trims surrounding whitespace.
func NormalizeText(s string) string {
	s = strings.ReplaceAll(s, "\t", "  ")
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// FormatPageMarkdown prefixes text with a level-1 heading built from title.
func FormatPageMarkdown(title, text string) string {
	return "# " + title + "\n\n" + text
}

// TruncateForPrompt returns the first budget characters of text followed by
// TruncationMarker, or text unchanged when it fits.
func TruncateForPrompt(text string, budget int) string {
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}
	return string(runes[:budget]) + TruncationMarker
}

// BuildAssistantPrompt embeds the page text, truncated to PromptBudget, in
// the prompt handed to the external assistant.
func BuildAssistantPrompt(page PageRef, text string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "I'm reading the %q page of the wallet documentation (%s).\n\n", page.Title, page.URL)
	sb.WriteString("Here is the page content:\n\n")
	sb.WriteString(TruncateForPrompt(text, PromptBudget))
	sb.WriteString("\n\nPlease help me understand this documentation and answer my questions about it.")
	return sb.String()
}

// ContentExtractor produces the plain-text rendering of the current page
// and performs the copy and ask-assistant actions on it.
type ContentExtractor struct {
	Source       PageContentSource
	Clipboard    Clipboard
	Tabs         TabOpener
	Notifier     Notifier
	AssistantURL string

	// CopiedResetDelay defaults to DefaultCopiedResetDelay.
	CopiedResetDelay time.Duration

	// Logger receives extraction fallbacks at debug level. Optional.
	Logger *slog.Logger

	mu     sync.Mutex
	copied bool
	gen    int
	timer  *time.Timer
}

// Extract returns the page text as markdown prefixed with the page title.
// Any failure of the content source falls back to the page summary.
func (x *ContentExtractor) Extract(ctx context.Context, page PageRef) string {
	return FormatPageMarkdown(page.Title, x.pageText(ctx, page))
}

func (x *ContentExtractor) pageText(ctx context.Context, page PageRef) string {
	if x.Source == nil {
		return NormalizeText(page.Summary)
	}
	text, err := x.Source.PageText(ctx)
	if err != nil {
		if x.Logger != nil {
			x.Logger.Debug("extraction fallback", "url", page.URL, "err", err)
		}
		return NormalizeText(page.Summary)
	}
	return NormalizeText(text)
}

// CopyPage writes the extracted markdown to the clipboard and reports the
// outcome through the notifier. It returns whether the write succeeded.
func (x *ContentExtractor) CopyPage(ctx context.Context, page PageRef) bool {
	text := x.Extract(ctx, page)
	if err := x.Clipboard.WriteText(ctx, text); err != nil {
		x.notifyClipboardFailure(err)
		return false
	}
	x.markCopied()
	x.notify(Notification{
		Title:       "Copied to clipboard",
		Description: "Page content copied as Markdown.",
		Variant:     NotificationDefault,
	})
	return true
}

// CopyLink writes the page URL to the clipboard.
func (x *ContentExtractor) CopyLink(ctx context.Context, page PageRef) bool {
	if err := x.Clipboard.WriteText(ctx, page.URL); err != nil {
		x.notifyClipboardFailure(err)
		return false
	}
	x.markCopied()
	x.notify(Notification{
		Title:       "Link copied",
		Description: page.URL,
		Variant:     NotificationDefault,
	})
	return true
}

// Prompt returns the assistant prompt for page, built from the extracted
// text with the same fallback as Extract.
func (x *ContentExtractor) Prompt(ctx context.Context, page PageRef) string {
	return BuildAssistantPrompt(page, x.pageText(ctx, page))
}

// AskAssistant opens the external assistant in a new tab and copies a prompt
// containing the page text to the clipboard. Both steps are attempted
// regardless of the other's outcome. It returns the prompt.
func (x *ContentExtractor) AskAssistant(ctx context.Context, page PageRef) string {
	prompt := x.Prompt(ctx, page)

	assistantURL := x.AssistantURL
	if assistantURL == "" {
		assistantURL = DefaultAssistantURL
	}
	if err := x.Tabs.OpenTab(ctx, assistantURL); err != nil {
		x.notify(Notification{
			Title:       "Could not open assistant",
			Description: ErrorMessage(err),
			Variant:     NotificationDestructive,
		})
	}

	if err := x.Clipboard.WriteText(ctx, prompt); err != nil {
		x.notifyClipboardFailure(err)
		return prompt
	}
	x.notify(Notification{
		Title:       "Prompt copied",
		Description: "Paste it into the assistant to ask about this page.",
		Variant:     NotificationDefault,
	})
	return prompt
}

// Copied reports whether a copy succeeded within the reset delay.
func (x *ContentExtractor) Copied() bool {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.copied
}

func (x *ContentExtractor) markCopied() {
	delay := x.CopiedResetDelay
	if delay <= 0 {
		delay = DefaultCopiedResetDelay
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	if x.timer != nil {
		x.timer.Stop()
	}
	x.copied = true
	x.gen++
	gen := x.gen
	x.timer = time.AfterFunc(delay, func() {
		x.mu.Lock()
		defer x.mu.Unlock()
		// A later copy owns the state.
		if x.gen == gen {
			x.copied = false
		}
	})
}

func (x *ContentExtractor) notifyClipboardFailure(err error) {
	x.notify(Notification{
		Title:       "Failed to copy",
		Description: ErrorMessage(err),
		Variant:     NotificationDestructive,
	})
}

func (x *ContentExtractor) notify(n Notification) {
	if x.Notifier != nil {
		x.Notifier.Notify(n)
	}
}
