package docsite_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/docsite"
	"github.com/stretchr/testify/assert"
)

func TestBuildFullDocs(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	t.Run("concatenates sections with generated footer", func(t *testing.T) {
		t.Parallel()

		got := docsite.BuildFullDocs("Wallet Docs", []docsite.DocSection{
			{Title: "Quick Start", Body: "Install the SDK."},
			{Title: "Auth API", Body: "# Auth API\n\nPOST /auth/otp"},
		}, now)

		want := "# Wallet Docs\n\n" +
			"## Quick Start\n\nInstall the SDK." +
			"\n\n---\n\n" +
			"# Auth API\n\nPOST /auth/otp" +
			"\n\n---\n\n_Generated on 2026-03-04T05:06:07Z_\n"
		assert.Equal(t, want, got)
	})

	t.Run("footer timestamp is UTC ISO-8601", func(t *testing.T) {
		t.Parallel()

		local := time.Date(2026, 3, 4, 10, 0, 0, 0, time.FixedZone("X", 2*3600))

		got := docsite.BuildFullDocs("Docs", nil, local)

		assert.True(t, strings.HasSuffix(got, "_Generated on 2026-03-04T08:00:00Z_\n"))
	})
}

func TestPageSections(t *testing.T) {
	t.Parallel()

	sections := docsite.PageSections([]*docsite.Page{
		{Path: "/", Title: "Introduction", Markdown: "# Introduction"},
		{Path: "/errors", Title: "Error Codes", Markdown: "Codes."},
	})

	assert.Equal(t, []docsite.DocSection{
		{Title: "Introduction", Path: "/", Body: "# Introduction"},
		{Title: "Error Codes", Path: "/errors", Body: "Codes."},
	}, sections)
}
