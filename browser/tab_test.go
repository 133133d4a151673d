package browser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elizafairlady/go-libgui/display"
	"github.com/elizafairlady/go-libgui/event"
	"github.com/elizafairlady/go-libgui/eventloop"
	"github.com/elizafairlady/go-libgui/geom"
	"github.com/elizafairlady/go-libgui/window"
)

func newTab(t *testing.T) (*Tab, *StubPageView) {
	t.Helper()
	bookmarks, err := LoadBookmarks(filepath.Join(t.TempDir(), "bookmarks.json"))
	require.NoError(t, err)
	view := NewStubPageView()
	tab := NewTab(nil, view, bookmarks, "http://home.example/", nil)
	tab.SetRect(geom.Rect(0, 0, 800, 600))
	return tab, view
}

func TestTabNavigateUpdatesChrome(t *testing.T) {
	tab, view := newTab(t)
	tab.Navigate("http://example.org/")

	assert.Equal(t, []string{"http://example.org/"}, view.Loads)
	assert.Equal(t, "http://example.org/", tab.LocationText())
	assert.Equal(t, "http://example.org/", tab.Title())
	assert.Equal(t, "http://example.org/", tab.History().Current())
}

func TestTabBackForward(t *testing.T) {
	tab, view := newTab(t)
	tab.Navigate("http://a/")
	tab.Navigate("http://b/")

	tab.GoBack()
	assert.Equal(t, "http://a/", view.URL())
	assert.Equal(t, "http://a/", tab.History().Current())

	tab.GoForward()
	assert.Equal(t, "http://b/", view.URL())

	// At the newest entry, forward does nothing.
	tab.GoForward()
	assert.Equal(t, "http://b/", view.URL())
	assert.Len(t, view.Loads, 4)
}

func TestTabBackButtonEnablement(t *testing.T) {
	tab, _ := newTab(t)
	assert.False(t, tab.backButton.Enabled)
	assert.False(t, tab.forwardButton.Enabled)

	tab.Navigate("http://a/")
	assert.False(t, tab.backButton.Enabled)

	tab.Navigate("http://b/")
	assert.True(t, tab.backButton.Enabled)
	assert.False(t, tab.forwardButton.Enabled)

	tab.GoBack()
	assert.False(t, tab.backButton.Enabled)
	assert.True(t, tab.forwardButton.Enabled)
}

func TestTabGoHome(t *testing.T) {
	tab, view := newTab(t)
	tab.GoHome()
	assert.Equal(t, "http://home.example/", view.URL())
}

func TestTabReloadKeepsHistory(t *testing.T) {
	tab, view := newTab(t)
	tab.Navigate("http://a/")
	tab.Reload()
	assert.Equal(t, []string{"http://a/", "http://a/"}, view.Loads)
	assert.Equal(t, 1, tab.History().Len())
}

func TestTabLocationReturnNavigates(t *testing.T) {
	tab, view := newTab(t)
	tab.location.SetText("example.org")
	tab.location.Event(&event.Key{Type: event.KeyDown, Rune: '\n'})

	assert.Equal(t, "http://example.org", view.URL())
	// Load start echoes the parsed URL back into the box.
	assert.Equal(t, "http://example.org", tab.LocationText())
}

func TestTabLinkClicks(t *testing.T) {
	tab, view := newTab(t)
	tab.Navigate("http://a/")

	var opened string
	tab.OnTabOpenRequest = func(url string) { opened = url }

	view.ClickLink("http://b/", "", 0)
	assert.Equal(t, "http://b/", view.URL())
	assert.Empty(t, opened)

	view.ClickLink("http://c/", "_blank", 0)
	assert.Equal(t, "http://c/", opened)
	assert.Equal(t, "http://b/", view.URL(), "a _blank link must not navigate this tab")

	view.ClickLink("http://d/", "", event.ModCtrl)
	assert.Equal(t, "http://d/", opened)
}

func TestTabLinkHoverSetsStatus(t *testing.T) {
	tab, view := newTab(t)
	view.HoverLink("http://target.example/")
	assert.Equal(t, "http://target.example/", tab.status.Text())
	view.HoverLink("")
	assert.Equal(t, "", tab.status.Text())
}

func TestTabToggleBookmark(t *testing.T) {
	tab, _ := newTab(t)
	tab.Navigate("http://example.org/")

	tab.ToggleBookmark()
	assert.True(t, tab.bookmarks.Contains("http://example.org/"))
	assert.Equal(t, "★", tab.bookmarkButton.Text)

	tab.ToggleBookmark()
	assert.False(t, tab.bookmarks.Contains("http://example.org/"))
	assert.Equal(t, "☆", tab.bookmarkButton.Text)
}

func TestTabShortcutReload(t *testing.T) {
	tab, view := newTab(t)
	tab.Navigate("http://a/")
	tab.Event(&event.Key{Type: event.KeyDown, Rune: 'r', Mod: event.ModCtrl})
	assert.Len(t, view.Loads, 2)
}

func TestTabTitleChangeCallback(t *testing.T) {
	tab, _ := newTab(t)
	var got string
	tab.OnTitleChange = func(title string) { got = title }
	tab.Navigate("http://example.org/")
	assert.Equal(t, "http://example.org/", got)
}

func TestTabToolWindows(t *testing.T) {
	mem := display.NewMemory()
	loop := eventloop.New()
	app := window.NewApp(mem, loop, nil)

	bookmarks := &Bookmarks{path: filepath.Join(t.TempDir(), "b.json")}
	tab := NewTab(app, NewStubPageView(), bookmarks, "http://home.example/", nil)
	tab.SetRect(geom.Rect(0, 0, 800, 600))

	tab.Event(&event.Key{Type: event.KeyDown, Code: event.CodeF12})
	require.NotNil(t, tab.inspector)
	title, err := tab.inspector.Title()
	require.NoError(t, err)
	assert.Equal(t, "Inspector", title)

	tab.Event(&event.Key{Type: event.KeyDown, Rune: 'i', Mod: event.ModCtrl})
	require.NotNil(t, tab.console)

	// A second request reuses the window.
	before := tab.console
	tab.ShowConsole()
	assert.Same(t, before, tab.console)
	assert.Equal(t, 2, app.Registry.Len())
}

func TestTabFocusLocation(t *testing.T) {
	mem := display.NewMemory()
	loop := eventloop.New()
	app := window.NewApp(mem, loop, nil)
	w, err := app.CreateWindow(window.Options{Rect: geom.Rect(0, 0, 800, 600)})
	require.NoError(t, err)

	bookmarks := &Bookmarks{path: filepath.Join(t.TempDir(), "b.json")}
	tab := NewTab(app, NewStubPageView(), bookmarks, "http://home.example/", nil)
	w.SetMainWidget(tab)
	w.SetFocusedWidget(tab)
	loop.DispatchPending()

	tab.Event(&event.Key{Type: event.KeyDown, Rune: 'l', Mod: event.ModCtrl})
	loop.DispatchPending()
	assert.Same(t, tab.location, w.FocusedWidget())
	assert.True(t, tab.location.Focused())
}

func TestTabBadLocationInput(t *testing.T) {
	tab, view := newTab(t)
	tab.location.SetText("   ")
	tab.location.Event(&event.Key{Type: event.KeyDown, Rune: '\n'})
	assert.Empty(t, view.Loads)
	assert.NotEmpty(t, tab.status.Text())
}
