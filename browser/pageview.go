package browser

import (
	"github.com/elizafairlady/go-libgui/geom"
	"github.com/elizafairlady/go-libgui/widget"
)

// Hooks are the callbacks a page view fires as a page progresses.
// Unset hooks are skipped.
type Hooks struct {
	// OnLoadStart fires when navigation to url begins.
	OnLoadStart func(url string)

	// OnTitleChange fires when the page announces its title.
	OnTitleChange func(title string)

	// OnLinkClick fires when a link is activated. Target is the
	// link's target attribute ("" or "_blank"); modifiers carries
	// the keyboard modifier bits held during the click.
	OnLinkClick func(url, target string, modifiers int)

	// OnLinkHover fires when the pointer enters (url set) or leaves
	// (url empty) a link.
	OnLinkHover func(url string)
}

// PageView is the widget that displays and drives a page. The chrome
// owns the view through this interface so page engines are
// interchangeable.
type PageView interface {
	widget.Widget

	// SetRect positions the view within the chrome.
	SetRect(r geom.Rectangle)

	// Load begins navigation to url.
	Load(url string) error

	// Reload loads the current URL again.
	Reload()

	// URL returns the URL of the current page, or "".
	URL() string

	// SetHooks installs the chrome's callbacks.
	SetHooks(h Hooks)
}

// StubPageView is a page view without a page engine: it acknowledges
// every load and reports the URL as the page title. It stands in for
// a real engine in tests and scaffolding.
type StubPageView struct {
	widget.Base
	hooks Hooks
	url   string

	// Loads records every URL handed to Load, reloads included.
	Loads []string
}

// NewStubPageView returns an empty stub view.
func NewStubPageView() *StubPageView {
	v := &StubPageView{}
	v.InitBase(v)
	return v
}

func (v *StubPageView) SetHooks(h Hooks) {
	v.hooks = h
}

func (v *StubPageView) URL() string {
	return v.url
}

func (v *StubPageView) Load(url string) error {
	v.url = url
	v.Loads = append(v.Loads, url)
	if v.hooks.OnLoadStart != nil {
		v.hooks.OnLoadStart(url)
	}
	if v.hooks.OnTitleChange != nil {
		v.hooks.OnTitleChange(url)
	}
	v.Invalidate()
	return nil
}

func (v *StubPageView) Reload() {
	if v.url != "" {
		_ = v.Load(v.url)
	}
}

// ClickLink simulates a link activation, for tests driving the
// chrome.
func (v *StubPageView) ClickLink(url, target string, modifiers int) {
	if v.hooks.OnLinkClick != nil {
		v.hooks.OnLinkClick(url, target, modifiers)
	}
}

// HoverLink simulates the pointer entering or leaving a link.
func (v *StubPageView) HoverLink(url string) {
	if v.hooks.OnLinkHover != nil {
		v.hooks.OnLinkHover(url)
	}
}

var _ PageView = (*StubPageView)(nil)
