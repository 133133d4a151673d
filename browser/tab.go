package browser

import (
	"go.uber.org/zap"

	"github.com/elizafairlady/go-libgui/event"
	"github.com/elizafairlady/go-libgui/geom"
	"github.com/elizafairlady/go-libgui/widget"
	"github.com/elizafairlady/go-libgui/window"
)

// Toolbar and status bar heights, and the fixed toolbar button width.
const (
	toolbarHeight = 28
	statusHeight  = 20
	buttonWidth   = 60
)

// Tab is one browser tab: toolbar with navigation buttons and the
// location box, the page view, and a status bar. It is the main
// widget of its window.
type Tab struct {
	widget.Base
	log *zap.Logger
	app *window.App

	view      PageView
	history   *History
	bookmarks *Bookmarks
	homeURL   string
	title     string

	actions       ActionMap
	backAction    *Action
	forwardAction *Action

	backButton     *widget.Button
	forwardButton  *widget.Button
	reloadButton   *widget.Button
	homeButton     *widget.Button
	bookmarkButton *widget.Button
	location       *widget.TextBox
	status         *widget.Label

	console   *window.Window
	inspector *window.Window

	// OnTitleChange fires when the tab's title changes, so the
	// owner can retitle the window or tab strip.
	OnTitleChange func(title string)

	// OnTabOpenRequest fires when a link wants a new tab. If unset,
	// the link opens in this tab instead.
	OnTabOpenRequest func(url string)
}

// NewTab builds a tab around view. The home URL is where the home
// button and the first Go call navigate.
func NewTab(app *window.App, view PageView, bookmarks *Bookmarks, homeURL string, log *zap.Logger) *Tab {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Tab{
		log:       log,
		app:       app,
		view:      view,
		history:   NewHistory(),
		bookmarks: bookmarks,
		homeURL:   homeURL,
	}
	t.InitBase(t)
	t.buildChrome()
	t.wireActions()
	t.wireHooks()
	return t
}

func (t *Tab) buildChrome() {
	t.backButton = widget.NewButton("Back")
	t.forwardButton = widget.NewButton("Forward")
	t.reloadButton = widget.NewButton("Reload")
	t.homeButton = widget.NewButton("Home")
	t.bookmarkButton = widget.NewButton("☆")
	t.location = widget.NewTextBox()
	t.status = widget.NewLabel("")

	for _, c := range []widget.Widget{
		t.backButton, t.forwardButton, t.reloadButton, t.homeButton,
		t.location, t.bookmarkButton, t.view, t.status,
	} {
		t.AddChild(c)
	}

	t.location.OnReturnPressed = func() {
		url, err := ParseUserURL(t.location.Text())
		if err != nil {
			t.status.SetText(err.Error())
			return
		}
		t.Navigate(url)
	}
}

func (t *Tab) wireActions() {
	t.backAction = NewAction("Go back", t.GoBack)
	t.forwardAction = NewAction("Go forward", t.GoForward)
	reload := NewAction("Reload", t.Reload).Shortcut('r', 0, event.ModCtrl)
	home := NewAction("Go home", t.GoHome)
	focusLocation := NewAction("Focus location", t.FocusLocation).Shortcut('l', 0, event.ModCtrl)
	inspect := NewAction("Open inspector", t.ShowInspector).Shortcut(0, event.CodeF12, 0)
	console := NewAction("Open console", t.ShowConsole).Shortcut('i', 0, event.ModCtrl)

	t.backAction.OnEnabledChange = t.backButton.SetEnabled
	t.forwardAction.OnEnabledChange = t.forwardButton.SetEnabled
	t.backButton.OnClick = t.backAction.Activate
	t.forwardButton.OnClick = t.forwardAction.Activate
	t.reloadButton.OnClick = reload.Activate
	t.homeButton.OnClick = home.Activate
	t.bookmarkButton.OnClick = t.ToggleBookmark

	t.actions.Add(t.backAction, t.forwardAction, reload, home, focusLocation, inspect, console)
	t.updateActions()
}

func (t *Tab) wireHooks() {
	t.view.SetHooks(Hooks{
		OnLoadStart: func(url string) {
			t.location.SetText(url)
			t.status.SetText("Loading " + url)
			t.updateBookmarkButton(url)
		},
		OnTitleChange: func(title string) {
			t.setTitle(title)
			t.status.SetText("")
		},
		OnLinkClick: func(url, target string, modifiers int) {
			if target == "_blank" || modifiers&event.ModCtrl != 0 {
				if t.OnTabOpenRequest != nil {
					t.OnTabOpenRequest(url)
					return
				}
			}
			t.Navigate(url)
		},
		OnLinkHover: func(url string) {
			t.status.SetText(url)
		},
	})
}

// SetRect lays the chrome out for the new size: toolbar on top,
// status bar at the bottom, page view filling the rest.
func (t *Tab) SetRect(r geom.Rectangle) {
	t.Base.SetRect(r)
	w, h := r.Dx(), r.Dy()

	x := 0
	for _, b := range []*widget.Button{t.backButton, t.forwardButton, t.reloadButton, t.homeButton} {
		b.SetRect(geom.Rect(x, 0, x+buttonWidth, toolbarHeight))
		x += buttonWidth
	}
	t.bookmarkButton.SetRect(geom.Rect(w-toolbarHeight, 0, w, toolbarHeight))
	t.location.SetRect(geom.Rect(x, 0, w-toolbarHeight, toolbarHeight))

	t.view.SetRect(geom.Rect(0, toolbarHeight, w, h-statusHeight))
	t.status.SetRect(geom.Rect(0, h-statusHeight, w, h))
}

// Event handles keyboard shortcuts before default routing.
func (t *Tab) Event(e event.Event) {
	if k, ok := e.(*event.Key); ok && t.actions.HandleKey(k) {
		return
	}
	t.Base.Event(e)
}

// Title returns the tab's current title.
func (t *Tab) Title() string {
	return t.title
}

// View returns the tab's page view.
func (t *Tab) View() PageView {
	return t.view
}

// History returns the tab's navigation history.
func (t *Tab) History() *History {
	return t.history
}

// LocationText returns the current location-box content.
func (t *Tab) LocationText() string {
	return t.location.Text()
}

// Navigate loads url as a new history entry.
func (t *Tab) Navigate(url string) {
	t.history.Push(url)
	t.show(url)
}

// GoBack navigates one history entry back.
func (t *Tab) GoBack() {
	if url, ok := t.history.Back(); ok {
		t.show(url)
	}
}

// GoForward navigates one history entry forward.
func (t *Tab) GoForward() {
	if url, ok := t.history.Forward(); ok {
		t.show(url)
	}
}

// Reload loads the current page again, keeping history in place.
func (t *Tab) Reload() {
	t.view.Reload()
}

// GoHome navigates to the home URL.
func (t *Tab) GoHome() {
	t.Navigate(t.homeURL)
}

// show loads url without touching history.
func (t *Tab) show(url string) {
	if err := t.view.Load(url); err != nil {
		t.log.Warn("page load failed", zap.String("url", url), zap.Error(err))
		t.status.SetText("Cannot load " + url)
	}
	t.updateActions()
}

func (t *Tab) updateActions() {
	t.backAction.SetEnabled(t.history.CanGoBack())
	t.forwardAction.SetEnabled(t.history.CanGoForward())
}

func (t *Tab) setTitle(title string) {
	if title == "" {
		title = t.view.URL()
	}
	if title == t.title {
		return
	}
	t.title = title
	if t.OnTitleChange != nil {
		t.OnTitleChange(title)
	}
}

// FocusLocation selects the location box content and gives it
// keyboard focus, so typing replaces the current URL.
func (t *Tab) FocusLocation() {
	t.location.SelectAll()
	if w := t.Window(); w != nil {
		w.SetFocusedWidget(t.location)
	}
}

// ToggleBookmark bookmarks the current page, or removes the bookmark
// if one exists. The list is saved immediately.
func (t *Tab) ToggleBookmark() {
	url := t.view.URL()
	if url == "" || t.bookmarks == nil {
		return
	}
	if t.bookmarks.Contains(url) {
		t.bookmarks.Remove(url)
	} else {
		t.bookmarks.Add(t.title, url)
	}
	if err := t.bookmarks.Save(); err != nil {
		t.log.Warn("bookmark save failed", zap.Error(err))
	}
	t.updateBookmarkButton(url)
}

func (t *Tab) updateBookmarkButton(url string) {
	if t.bookmarks != nil && t.bookmarks.Contains(url) {
		t.bookmarkButton.Text = "★"
	} else {
		t.bookmarkButton.Text = "☆"
	}
	t.bookmarkButton.Invalidate()
}

// ShowInspector opens the DOM inspector window, creating it on first
// use.
func (t *Tab) ShowInspector() {
	t.inspector = t.showTool(t.inspector, "Inspector", geom.Rect(100, 100, 500, 600))
}

// ShowConsole opens the console window, creating it on first use.
func (t *Tab) ShowConsole() {
	t.console = t.showTool(t.console, "Console", geom.Rect(120, 120, 620, 420))
}

// showTool returns win after making sure it exists and is shown.
func (t *Tab) showTool(win *window.Window, name string, r geom.Rectangle) *window.Window {
	if t.app == nil {
		return win
	}
	if win == nil {
		w, err := t.app.CreateWindow(window.Options{Rect: r, Title: name})
		if err != nil {
			t.log.Warn("tool window creation failed",
				zap.String("tool", name), zap.Error(err))
			return nil
		}
		w.SetMainWidget(widget.NewLabel(name))
		win = w
	}
	if err := win.Show(); err != nil {
		t.log.Warn("tool window show failed",
			zap.String("tool", name), zap.Error(err))
	}
	return win
}
