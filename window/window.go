package window

import (
	"go.uber.org/zap"

	"github.com/elizafairlady/go-libgui/display"
	"github.com/elizafairlady/go-libgui/event"
	"github.com/elizafairlady/go-libgui/geom"
	"github.com/elizafairlady/go-libgui/widget"
)

// Window is a top-level window. It owns a widget tree rooted at the
// main widget and routes incoming events into it: mouse events by
// hit-test, key events to the focused widget, paint events to the main
// widget.
//
// A Window is not safe for concurrent use; all calls belong on the UI
// goroutine.
type Window struct {
	app  *App
	id   display.WindowID
	rect geom.Rectangle
	log  *zap.Logger

	main    widget.Widget
	focused widget.Widget
	closed  bool
}

// ID returns the display-assigned window id.
func (w *Window) ID() display.WindowID {
	return w.id
}

// Title reads the window title back from the display layer.
func (w *Window) Title() (string, error) {
	title, err := w.app.Display.WindowTitle(w.id)
	if err != nil {
		return "", &ProtocolError{Op: "title", Err: err}
	}
	return title, nil
}

// SetTitle updates the window title with the display layer.
func (w *Window) SetTitle(title string) error {
	if err := w.app.Display.SetWindowTitle(w.id, title); err != nil {
		return &ProtocolError{Op: "set-title", Err: err}
	}
	return nil
}

// Rect returns the window's rectangle in screen coordinates.
func (w *Window) Rect() geom.Rectangle {
	return w.rect
}

// SetRect moves and resizes the window. On success the main widget is
// resized to fill the new client area.
func (w *Window) SetRect(r geom.Rectangle) error {
	if err := w.app.Display.SetWindowRect(w.id, r); err != nil {
		return &ProtocolError{Op: "set-rect", Err: err}
	}
	w.rect = r
	if sr, ok := w.main.(interface{ SetRect(geom.Rectangle) }); ok {
		sr.SetRect(geom.Rect(0, 0, r.Dx(), r.Dy()))
	}
	return nil
}

// Show makes the window contents current by requesting a full repaint.
func (w *Window) Show() error {
	if err := w.app.Display.InvalidateWindow(w.id, geom.ZR); err != nil {
		return &ProtocolError{Op: "show", Err: err}
	}
	return nil
}

// Close destroys the window with the display layer and removes it from
// the registry. The window must not be used afterwards; events already
// in flight for its id are dropped by the registry lookup.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.focused = nil
	if w.main != nil {
		w.main.SetWindow(nil)
		w.main = nil
	}
	w.app.Registry.Unregister(w.id)
	if err := w.app.Display.DestroyWindow(w.id); err != nil {
		return &ProtocolError{Op: "close", Err: err}
	}
	w.log.Debug("window closed")
	return nil
}

// Update requests a repaint of r, in window-local coordinates. An
// empty rectangle repaints everything. The request is a hint; errors
// from the display layer are returned but the window state is
// unaffected.
func (w *Window) Update(r geom.Rectangle) error {
	if err := w.app.Display.InvalidateWindow(w.id, r); err != nil {
		return &ProtocolError{Op: "update", Err: err}
	}
	return nil
}

// MainWidget returns the root of the widget tree, or nil.
func (w *Window) MainWidget() widget.Widget {
	return w.main
}

// SetMainWidget installs root as the window's widget tree. The
// previous main widget is detached and keyboard focus is cleared; the
// new widget is resized to fill the window and a full repaint is
// requested. Setting the current main widget again is a no-op.
func (w *Window) SetMainWidget(root widget.Widget) {
	if root == w.main {
		return
	}
	if w.main != nil {
		w.SetFocusedWidget(nil)
		w.main.SetWindow(nil)
	}
	w.main = root
	if root == nil {
		return
	}
	root.SetWindow(w)
	if sr, ok := root.(interface{ SetRect(geom.Rectangle) }); ok {
		sr.SetRect(geom.Rect(0, 0, w.rect.Dx(), w.rect.Dy()))
	}
	_ = w.Update(geom.ZR)
}

// FocusedWidget returns the widget holding keyboard focus, or nil.
func (w *Window) FocusedWidget() widget.Widget {
	return w.focused
}

// SetFocusedWidget moves keyboard focus to target. The outgoing widget
// is told before the incoming one: FocusOut is posted to the event
// loop ahead of FocusIn, and the loop preserves posting order, so no
// widget ever observes two focus holders at once. Setting the current
// holder again is a no-op.
func (w *Window) SetFocusedWidget(target widget.Widget) {
	if w.focused == target {
		return
	}
	old := w.focused
	w.focused = target
	if old != nil {
		w.app.Loop.Post(old, &event.Focus{Type: event.FocusOut})
	}
	if target != nil {
		w.app.Loop.Post(target, &event.Focus{Type: event.FocusIn})
	}
	// Focus rings are drawn by the widgets; repaint the window so
	// both the old and new holders get redrawn.
	_ = w.Update(geom.ZR)
}

// Event routes a window-level event into the widget tree.
func (w *Window) Event(e event.Event) {
	switch ev := e.(type) {
	case *event.Mouse:
		w.routeMouse(ev)
	case *event.Paint:
		w.routePaint(ev)
	case *event.Key:
		if w.focused != nil {
			w.focused.Event(ev)
		}
	case *event.Generic:
		switch ev.Type {
		case event.ShowRequest:
			if err := w.Show(); err != nil {
				w.log.Warn("show request failed", zap.Error(err))
			}
		case event.HideRequest, event.WindowEntered, event.WindowLeft:
			// No window-level behavior attached.
		}
	}
}

// routeMouse resolves the event position to the deepest widget under
// it and delivers the event with the position translated into that
// widget's local coordinates.
func (w *Window) routeMouse(m *event.Mouse) {
	if w.main == nil {
		return
	}
	r := w.main.Rect()
	if !r.Contains(m.Pos.X, m.Pos.Y) {
		// The display layer should only send positions inside the
		// window; a breach is dropped rather than clamped.
		w.log.Debug("mouse event outside main widget dropped",
			zap.Int("x", m.Pos.X), zap.Int("y", m.Pos.Y))
		return
	}
	res := w.main.HitTest(m.Pos.X-r.Min.X, m.Pos.Y-r.Min.Y)
	local := *m
	local.Pos = res.Pos
	res.Widget.Event(&local)
}

// routePaint delivers a paint request to the main widget and then
// reports paint completion for the effective rectangle. An empty
// request rectangle is widened to the whole main widget.
func (w *Window) routePaint(p *event.Paint) {
	if w.main == nil {
		return
	}
	r := p.Rect
	if r.Empty() {
		mr := w.main.Rect()
		r = geom.Rect(0, 0, mr.Dx(), mr.Dy())
	}
	w.main.Event(&event.Paint{Rect: r})
	if err := w.app.Display.NotifyPaintFinished(w.id, r); err != nil {
		w.log.Warn("paint-finished notification failed", zap.Error(err))
	}
}

var _ widget.Window = (*Window)(nil)
