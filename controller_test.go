package docsite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dispatchRecorder struct {
	navigated []string
	opened    []string
}

func (r *dispatchRecorder) navigator() *mock.Navigator {
	return &mock.Navigator{
		NavigateFn: func(_ context.Context, path string) error {
			r.navigated = append(r.navigated, path)
			return nil
		},
	}
}

func (r *dispatchRecorder) tabs() *mock.TabOpener {
	return &mock.TabOpener{
		OpenTabFn: func(_ context.Context, url string) error {
			r.opened = append(r.opened, url)
			return nil
		},
	}
}

func newTestController(t *testing.T) (*docsite.SearchController, *dispatchRecorder) {
	t.Helper()
	rec := &dispatchRecorder{}
	return docsite.NewSearchController(newTestIndex(t), rec.navigator(), rec.tabs()), rec
}

func TestSearchController_Select(t *testing.T) {
	t.Parallel()

	t.Run("navigates in place to a page and resets state", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestController(t)
		c.Open()

		results := c.SetQuery("quick")
		require.NotEmpty(t, results)
		assert.Equal(t, "Quick Start", results[0].Title)
		assert.Equal(t, docsite.KindPage, results[0].Kind)

		err := c.Select(context.Background(), results[0])

		require.NoError(t, err)
		assert.Equal(t, []string{"/quick-start"}, rec.navigated)
		assert.Empty(t, rec.opened)
		assert.False(t, c.IsOpen())
		assert.Equal(t, "", c.Query())
		assert.Empty(t, c.Results())
	})

	t.Run("opens external records in a new tab without navigating", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestController(t)
		c.Open()
		results := c.SetQuery("discord")
		require.Len(t, results, 1)

		err := c.Select(context.Background(), results[0])

		require.NoError(t, err)
		assert.Equal(t, []string{"https://discord.gg/example"}, rec.opened)
		assert.Empty(t, rec.navigated)
		assert.False(t, c.IsOpen())
		assert.Equal(t, "", c.Query())
	})

	t.Run("section and api records navigate in place", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestController(t)

		for _, r := range testRecords() {
			if r.Kind == docsite.KindExternal {
				continue
			}
			require.NoError(t, c.Select(context.Background(), r))
		}

		assert.Empty(t, rec.opened)
		assert.Len(t, rec.navigated, len(testRecords())-1)
	})

	t.Run("closes even when navigation fails", func(t *testing.T) {
		t.Parallel()

		nav := &mock.Navigator{
			NavigateFn: func(context.Context, string) error {
				return errors.New("router unavailable")
			},
		}
		c := docsite.NewSearchController(newTestIndex(t), nav, nil)
		c.Open()
		c.SetQuery("web")

		err := c.Select(context.Background(), testRecords()[3])

		require.Error(t, err)
		assert.False(t, c.IsOpen())
		assert.Equal(t, "", c.Query())
	})
}

func TestSearchController_SetQuery(t *testing.T) {
	t.Parallel()

	t.Run("reflects the latest query", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestController(t)

		c.SetQuery("wallet")
		c.SetQuery("wallet deployment")

		assert.Equal(t, "wallet deployment", c.Query())
		assert.Equal(t, []string{"Wallet & Transactions API"}, titles(c.Results()))
	})

	t.Run("whitespace query yields no results", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestController(t)
		c.SetQuery("wallet")

		results := c.SetQuery("   ")

		assert.Empty(t, results)
		assert.Empty(t, c.Results())
	})

	t.Run("close resets query and results", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestController(t)
		c.Open()
		c.SetQuery("api")

		c.Close()

		assert.False(t, c.IsOpen())
		assert.Empty(t, c.Query())
		assert.Empty(t, c.Results())
	})
}

func TestSearchController_Shortcut(t *testing.T) {
	t.Parallel()

	t.Run("cmd+k opens the search surface and prevents default", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestController(t)
		src := &mock.KeyEventSource{}
		c.Mount(src)

		e := &docsite.KeyEvent{Key: "k", Meta: true}
		src.Dispatch(e)

		assert.True(t, c.IsOpen())
		assert.True(t, e.DefaultPrevented())
	})

	t.Run("ctrl+K opens the search surface", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestController(t)
		src := &mock.KeyEventSource{}
		c.Mount(src)

		src.Dispatch(&docsite.KeyEvent{Key: "K", Ctrl: true})

		assert.True(t, c.IsOpen())
	})

	t.Run("ignores k without modifier", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestController(t)
		src := &mock.KeyEventSource{}
		c.Mount(src)

		e := &docsite.KeyEvent{Key: "k"}
		src.Dispatch(e)

		assert.False(t, c.IsOpen())
		assert.False(t, e.DefaultPrevented())
	})

	t.Run("unmount removes the listener", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestController(t)
		src := &mock.KeyEventSource{}
		c.Mount(src)
		require.Equal(t, 1, src.ListenerCount())
		require.True(t, c.Mounted())

		c.Unmount()
		c.Unmount()
		src.Dispatch(&docsite.KeyEvent{Key: "k", Meta: true})

		assert.Equal(t, 0, src.ListenerCount())
		assert.False(t, c.Mounted())
		assert.False(t, c.IsOpen())
	})

	t.Run("remounting does not leave a dangling listener", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestController(t)
		src := &mock.KeyEventSource{}

		c.Mount(src)
		c.Mount(src)

		assert.Equal(t, 1, src.ListenerCount())
	})
}
