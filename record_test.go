package docsite_test

import (
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/stretchr/testify/assert"
)

func TestKind_Valid(t *testing.T) {
	t.Parallel()

	for _, k := range []docsite.Kind{docsite.KindPage, docsite.KindSection, docsite.KindAPI, docsite.KindExternal} {
		assert.True(t, k.Valid(), string(k))
	}
	assert.False(t, docsite.Kind("").Valid())
	assert.False(t, docsite.Kind("guide").Valid())
}

func TestTheme(t *testing.T) {
	t.Parallel()

	assert.True(t, docsite.ThemeDark.Valid())
	assert.False(t, docsite.Theme("sepia").Valid())
	assert.Equal(t, docsite.ThemeLight, docsite.ThemeDark.Toggle())
	assert.Equal(t, docsite.ThemeDark, docsite.ThemeLight.Toggle())
	assert.Equal(t, docsite.ThemeDark, docsite.ThemeSystem.Toggle())
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&docsite.Page{Path: "/quick-start", Title: "Quick Start"}).Validate())
	assert.Equal(t, docsite.EINVALID, docsite.ErrorCode((&docsite.Page{Path: "quick", Title: "Q"}).Validate()))
	assert.Equal(t, docsite.EINVALID, docsite.ErrorCode((&docsite.Page{Path: "/q"}).Validate()))
}
