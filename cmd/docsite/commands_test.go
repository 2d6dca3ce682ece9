package main_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/docsite"
	main "github.com/fwojciec/docsite/cmd/docsite"
	"github.com/fwojciec/docsite/goquery"
	"github.com/fwojciec/docsite/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var authPage = &docsite.Page{
	Path:    "/api/auth",
	Title:   "Authentication API",
	Summary: "Email OTP and sessions.",
	HTML:    `<h1 id="authentication-api">Authentication API</h1><p>Send a code.</p>`,
}

// newDeps returns dependencies over authPage with the given clipboard.
func newDeps(clip docsite.Clipboard) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdin:  strings.NewReader(""),
		Stdout: stdout,
		Stderr: stderr,
		Pages: &mock.PageService{
			FindPageByPathFn: func(_ context.Context, path string) (*docsite.Page, error) {
				if path == authPage.Path {
					return authPage, nil
				}
				return nil, docsite.Errorf(docsite.ENOTFOUND, "page not found")
			},
		},
		Parser:    &goquery.Parser{},
		Clipboard: clip,
		Notifier:  &main.WriterNotifier{W: stderr},
		Config:    main.Config{BaseURL: "https://docs.example.com", AssistantURL: "https://assistant.example.com/"},
	}, stdout, stderr
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	records := []docsite.SearchRecord{
		{Title: "GitHub", URL: "https://github.com/example/wallet", Kind: docsite.KindExternal},
		{Title: "Auth", URL: "/api/auth", Kind: docsite.KindAPI},
	}
	searcher := &mock.Searcher{SearchFn: func(query string) []docsite.SearchRecord {
		if query == "wallet source" {
			return records[:1]
		}
		return records[1:]
	}}

	t.Run("opens external result in a tab", func(t *testing.T) {
		t.Parallel()

		var opened string
		deps, stdout, _ := newDeps(nil)
		deps.Searcher = searcher
		deps.Navigator = &mock.Navigator{NavigateFn: func(context.Context, string) error {
			t.Fatal("unexpected navigation")
			return nil
		}}
		deps.Tabs = &mock.TabOpener{OpenTabFn: func(_ context.Context, url string) error {
			opened = url
			return nil
		}}

		cmd := &main.SearchCmd{Query: []string{"wallet", "source"}, Open: true}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "https://github.com/example/wallet", opened)
		assert.Contains(t, stdout.String(), "[external] GitHub")
	})

	t.Run("interactive selection navigates internally", func(t *testing.T) {
		t.Parallel()

		var navigated string
		deps, stdout, _ := newDeps(nil)
		deps.Stdin = strings.NewReader("auth\n1\n")
		deps.Searcher = searcher
		deps.Navigator = &mock.Navigator{NavigateFn: func(_ context.Context, path string) error {
			navigated = path
			return nil
		}}

		cmd := &main.SearchCmd{Interactive: true}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "/api/auth", navigated)
		assert.Contains(t, stdout.String(), "Opened /api/auth")
	})

	t.Run("interactive rejects out of range number", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(nil)
		deps.Stdin = strings.NewReader("auth\n5\n")
		deps.Searcher = searcher

		cmd := &main.SearchCmd{Interactive: true}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No result 5.")
	})
}

func TestCopyCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("copies page markdown", func(t *testing.T) {
		t.Parallel()

		var copied string
		deps, _, stderr := newDeps(&mock.Clipboard{WriteTextFn: func(_ context.Context, text string) error {
			copied = text
			return nil
		}})

		cmd := &main.CopyCmd{Path: "/api/auth"}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "# Authentication API\n\nAuthentication API\n\nSend a code.", copied)
		assert.Contains(t, stderr.String(), "Copied to clipboard")
	})

	t.Run("copies link", func(t *testing.T) {
		t.Parallel()

		var copied string
		deps, _, _ := newDeps(&mock.Clipboard{WriteTextFn: func(_ context.Context, text string) error {
			copied = text
			return nil
		}})

		cmd := &main.CopyCmd{Path: "/api/auth", Link: true}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "https://docs.example.com/api/auth", copied)
	})

	t.Run("reports clipboard failure", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(&mock.Clipboard{WriteTextFn: func(context.Context, string) error {
			return docsite.Errorf(docsite.ECLIPBOARD, "no clipboard utility")
		}})

		cmd := &main.CopyCmd{Path: "/api/auth"}
		err := cmd.Run(deps)
		assert.Equal(t, docsite.ECLIPBOARD, docsite.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: Failed to copy: no clipboard utility")
	})

	t.Run("reads remote page through fetcher", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(nil)
		deps.Fetcher = &mock.Fetcher{FetchFn: func(_ context.Context, url string) (string, error) {
			assert.Equal(t, "https://docs.example.com/api/auth", url)
			return `<html><body><nav>Menu</nav><article data-page-content><p>Deployed text.</p></article></body></html>`, nil
		}}

		cmd := &main.CopyCmd{Path: "/api/auth", Remote: true, Print: true}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "# Authentication API\n\nDeployed text.\n", stdout.String())
	})

	t.Run("remote without fetcher is invalid", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(nil)
		cmd := &main.CopyCmd{Path: "/api/auth", Remote: true}
		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(cmd.Run(deps)))
	})
}

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("hands off to external assistant", func(t *testing.T) {
		t.Parallel()

		var opened, copied string
		deps, _, stderr := newDeps(&mock.Clipboard{WriteTextFn: func(_ context.Context, text string) error {
			copied = text
			return nil
		}})
		deps.Tabs = &mock.TabOpener{OpenTabFn: func(_ context.Context, url string) error {
			opened = url
			return nil
		}}

		cmd := &main.AskCmd{Path: "/api/auth"}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "https://assistant.example.com/", opened)
		assert.Contains(t, copied, `"Authentication API"`)
		assert.Contains(t, copied, "Send a code.")
		assert.Contains(t, stderr.String(), "Prompt copied")
	})

	t.Run("copies prompt when tab cannot open", func(t *testing.T) {
		t.Parallel()

		copied := false
		deps, _, stderr := newDeps(&mock.Clipboard{WriteTextFn: func(context.Context, string) error {
			copied = true
			return nil
		}})
		deps.Tabs = &mock.TabOpener{OpenTabFn: func(context.Context, string) error {
			return errors.New("no browser")
		}}

		cmd := &main.AskCmd{Path: "/api/auth"}
		require.NoError(t, cmd.Run(deps))
		assert.True(t, copied)
		assert.Contains(t, stderr.String(), "error: Could not open assistant")
	})

	t.Run("answers inline", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(nil)
		deps.Assistant = &mock.Assistant{AnswerFn: func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "Send a code.")
			assert.True(t, strings.HasSuffix(prompt, "My question: How long is a code valid?"))
			return "Ten minutes.", nil
		}}

		cmd := &main.AskCmd{Path: "/api/auth", Question: "How long is a code valid?", Inline: true}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "Ten minutes.\n", stdout.String())
	})

	t.Run("reports unknown page", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(nil)
		cmd := &main.AskCmd{Path: "/nope"}
		err := cmd.Run(deps)
		assert.Equal(t, docsite.ENOTFOUND, docsite.ErrorCode(err))
		assert.Contains(t, stderr.String(), `page "/nope" not found`)
	})
}

func TestWriterNotifier_Notify(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := &main.WriterNotifier{W: &buf}
	n.Notify(docsite.Notification{Title: "Link copied", Description: "https://x", Variant: docsite.NotificationDefault})
	n.Notify(docsite.Notification{Title: "Failed to copy", Variant: docsite.NotificationDestructive})

	assert.Equal(t, "Link copied: https://x\nerror: Failed to copy\n", buf.String())
}

func TestCheckCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := newDeps(nil)
	deps.Pages = &mock.PageService{FindPagesFn: func(context.Context) ([]*docsite.Page, error) {
		return []*docsite.Page{authPage}, nil
	}}
	deps.Links = &goquery.LinkExtractor{BaseURL: "https://docs.example.com"}
	deps.Records = []docsite.SearchRecord{
		{Title: "Auth errors", URL: "/api/auth#errors", Kind: docsite.KindSection},
	}

	err := (&main.CheckCmd{}).Run(deps)
	assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err))
	assert.Equal(t, "records: /api/auth#errors (no such heading)\n", stdout.String())
}
