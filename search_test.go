package docsite_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []docsite.SearchRecord {
	return []docsite.SearchRecord{
		{
			Title:       "Quick Start",
			URL:         "/quick-start",
			Kind:        docsite.KindPage,
			Description: "Get up and running with wallet login in minutes",
			Category:    "Getting Started",
		},
		{
			Title:       "Wallet & Transactions API",
			URL:         "/api/wallet",
			Kind:        docsite.KindAPI,
			Description: "Smart wallet deployment, balances and transaction execution",
			Category:    "API Reference",
		},
		{
			Title:       "Authentication API",
			URL:         "/api/auth",
			Kind:        docsite.KindAPI,
			Description: "Email OTP and social login sessions",
			Category:    "API Reference",
		},
		{
			Title:       "Web SDK",
			URL:         "/sdk/web",
			Kind:        docsite.KindPage,
			Description: "Add wallet login to a web app",
			Category:    "SDKs",
		},
		{
			Title:       "Quick Start: Install",
			URL:         "/quick-start#install",
			Kind:        docsite.KindSection,
			Description: "Install the SDK package",
			Category:    "Getting Started",
		},
		{
			Title:       "Community Discord",
			URL:         "https://discord.gg/example",
			Kind:        docsite.KindExternal,
			Description: "Ask questions and get help",
			Category:    "Community",
		},
	}
}

func newTestIndex(t *testing.T) *docsite.SearchIndex {
	t.Helper()
	idx, err := docsite.NewSearchIndex(testRecords())
	require.NoError(t, err)
	return idx
}

func titles(records []docsite.SearchRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func TestSearchIndex_Search(t *testing.T) {
	t.Parallel()

	t.Run("matches every term across title, description and category", func(t *testing.T) {
		t.Parallel()

		idx := newTestIndex(t)

		results := idx.Search("wallet deployment")

		assert.Equal(t, []string{"Wallet & Transactions API"}, titles(results))
	})

	t.Run("requires every term to match", func(t *testing.T) {
		t.Parallel()

		idx := newTestIndex(t)

		results := idx.Search("wallet otp")

		assert.Empty(t, results)
	})

	t.Run("is case insensitive", func(t *testing.T) {
		t.Parallel()

		idx := newTestIndex(t)

		results := idx.Search("API REFERENCE")

		assert.Equal(t, []string{"Wallet & Transactions API", "Authentication API"}, titles(results))
	})

	t.Run("matches terms spanning category", func(t *testing.T) {
		t.Parallel()

		idx := newTestIndex(t)

		results := idx.Search("install started")

		assert.Equal(t, []string{"Quick Start: Install"}, titles(results))
	})

	t.Run("preserves static order among matches", func(t *testing.T) {
		t.Parallel()

		idx := newTestIndex(t)

		results := idx.Search("quick")

		require.Len(t, results, 2)
		assert.Equal(t, "/quick-start", results[0].URL)
		assert.Equal(t, "/quick-start#install", results[1].URL)
	})

	t.Run("returns empty for empty and whitespace queries", func(t *testing.T) {
		t.Parallel()

		idx := newTestIndex(t)

		for _, q := range []string{"", " ", "\t\n  "} {
			assert.Empty(t, idx.Search(q), "query %q", q)
		}
	})

	t.Run("empty query after a matching query is still empty", func(t *testing.T) {
		t.Parallel()

		idx := newTestIndex(t)

		require.NotEmpty(t, idx.Search("wallet"))
		assert.Empty(t, idx.Search("   "))
	})

	t.Run("caps results at ten in definition order", func(t *testing.T) {
		t.Parallel()

		var records []docsite.SearchRecord
		for i := 0; i < 15; i++ {
			records = append(records, docsite.SearchRecord{
				Title: fmt.Sprintf("Guide %02d", i),
				URL:   fmt.Sprintf("/guides/%d", i),
				Kind:  docsite.KindPage,
			})
		}
		idx, err := docsite.NewSearchIndex(records)
		require.NoError(t, err)

		results := idx.Search("guide")

		require.Len(t, results, docsite.MaxSearchResults)
		for i, r := range results {
			assert.Equal(t, fmt.Sprintf("Guide %02d", i), r.Title)
		}
	})
}

func TestSearchIndex_MatchesPredicate(t *testing.T) {
	t.Parallel()

	idx := newTestIndex(t)
	queries := []string{"wallet", "api", "login web", "sdk", "help community", "start"}

	for _, q := range queries {
		var want []string
		for _, r := range idx.Records() {
			if docsite.Matches(r, q) {
				want = append(want, r.Title)
			}
		}
		got := titles(idx.Search(q))
		if want == nil {
			want = []string{}
		}
		assert.Equal(t, want, got, "query %q", q)
	}
}

func TestNewSearchIndex(t *testing.T) {
	t.Parallel()

	t.Run("copies records so later mutation has no effect", func(t *testing.T) {
		t.Parallel()

		records := testRecords()
		idx, err := docsite.NewSearchIndex(records)
		require.NoError(t, err)

		records[0].Title = "Changed"

		assert.Equal(t, "Quick Start", idx.Records()[0].Title)
		assert.Equal(t, len(records), idx.Len())
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		t.Parallel()

		_, err := docsite.NewSearchIndex([]docsite.SearchRecord{
			{Title: "Bad", URL: "/bad", Kind: "video"},
		})

		require.Error(t, err)
		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err))
	})

	t.Run("rejects relative external url", func(t *testing.T) {
		t.Parallel()

		_, err := docsite.NewSearchIndex([]docsite.SearchRecord{
			{Title: "Bad", URL: "/somewhere", Kind: docsite.KindExternal},
		})

		require.Error(t, err)
		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err))
	})

	t.Run("rejects missing title", func(t *testing.T) {
		t.Parallel()

		_, err := docsite.NewSearchIndex([]docsite.SearchRecord{
			{URL: "/somewhere", Kind: docsite.KindPage},
		})

		require.Error(t, err)
		assert.Contains(t, docsite.ErrorMessage(err), "title required")
	})
}
