package clipboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboard_WriteText(t *testing.T) {
	t.Parallel()

	t.Run("writes text", func(t *testing.T) {
		t.Parallel()

		var got string
		c := &clipboard.Clipboard{WriteAll: func(text string) error {
			got = text
			return nil
		}}

		require.NoError(t, c.WriteText(context.Background(), "# Title\n\nBody"))
		assert.Equal(t, "# Title\n\nBody", got)
	})

	t.Run("maps write failure to ECLIPBOARD", func(t *testing.T) {
		t.Parallel()

		c := &clipboard.Clipboard{WriteAll: func(string) error {
			return errors.New("xclip not found")
		}}

		err := c.WriteText(context.Background(), "x")
		assert.Equal(t, docsite.ECLIPBOARD, docsite.ErrorCode(err))
		assert.Contains(t, docsite.ErrorMessage(err), "xclip not found")
	})

	t.Run("does not write after cancellation", func(t *testing.T) {
		t.Parallel()

		called := false
		c := &clipboard.Clipboard{WriteAll: func(string) error {
			called = true
			return nil
		}}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := c.WriteText(ctx, "x")
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestNewClipboard(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, clipboard.NewClipboard().WriteAll)
}
