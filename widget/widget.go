// Package widget provides the widget-tree capability contract consumed
// by the window layer, plus an embeddable Base implementing the tree,
// hit-testing, and default event plumbing.
//
// Widget rectangles are parent-relative. HitTest resolves a point to
// the deepest widget under it, translating the point into that widget's
// local coordinate space as it descends.
package widget

import (
	"github.com/elizafairlady/go-libgui/event"
	"github.com/elizafairlady/go-libgui/geom"
)

// Window is the surface a widget tree is mounted on. Widgets hold it
// as a non-owning back-reference: the window owns the widget tree, the
// widget merely records which window it belongs to.
type Window interface {
	// Update requests a repaint of r. An empty rectangle means the
	// whole window.
	Update(r geom.Rectangle) error

	// SetFocusedWidget directs subsequent key events at w.
	SetFocusedWidget(w Widget)
}

// Widget is the capability contract the window layer routes events
// through.
type Widget interface {
	// Rect returns the widget's rectangle in its parent's
	// coordinate space.
	Rect() geom.Rectangle

	// HitTest resolves a point, given in the widget's local
	// coordinates, to the deepest descendant under it. The widget
	// itself is the fallback target, so the result is never empty.
	HitTest(x, y int) HitResult

	// Event delivers a widget-local event.
	Event(e event.Event)

	// SetWindow records the owning window.
	SetWindow(win Window)

	// Window returns the recorded owning window, or nil.
	Window() Window
}

// HitResult is the outcome of a hit-test: the target widget and the
// queried point translated into the target's local coordinates.
type HitResult struct {
	Widget Widget
	Pos    geom.Point
}

// Base is the embeddable core of a widget: rectangle, child list,
// window back-reference, and default event handling. Concrete widgets
// embed Base and pass themselves to InitBase so that hit-testing can
// return the outermost value rather than the embedded Base.
type Base struct {
	self     Widget
	rect     geom.Rectangle
	children []Widget
	win      Window
}

// InitBase records the outermost widget value. Widgets that forget to
// call it still work; they just hit-test to the embedded *Base.
func (b *Base) InitBase(self Widget) {
	b.self = self
}

func (b *Base) outer() Widget {
	if b.self != nil {
		return b.self
	}
	return b
}

// Rect returns the widget's rectangle in parent coordinates.
func (b *Base) Rect() geom.Rectangle {
	return b.rect
}

// SetRect sets the widget's rectangle in parent coordinates.
func (b *Base) SetRect(r geom.Rectangle) {
	b.rect = r
}

// SetWindow records the owning window and propagates it through the
// subtree, so any descendant can request repaints or claim focus.
func (b *Base) SetWindow(win Window) {
	b.win = win
	for _, child := range b.children {
		child.SetWindow(win)
	}
}

// Window returns the recorded owning window, or nil.
func (b *Base) Window() Window {
	return b.win
}

// AddChild appends child to the widget's children and hands it the
// owning window. Later children are considered on top of earlier ones
// for hit-testing.
func (b *Base) AddChild(child Widget) {
	child.SetWindow(b.win)
	b.children = append(b.children, child)
}

// RemoveChild removes child by identity and reports whether it was
// present. A removed child no longer belongs to a window.
func (b *Base) RemoveChild(child Widget) bool {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			child.SetWindow(nil)
			return true
		}
	}
	return false
}

// Children returns a copy of the child list.
func (b *Base) Children() []Widget {
	out := make([]Widget, len(b.children))
	copy(out, b.children)
	return out
}

// HitTest resolves (x, y), in this widget's local coordinates, to the
// deepest child containing the point, translating coordinates on the
// way down. Children are scanned topmost-first.
func (b *Base) HitTest(x, y int) HitResult {
	for i := len(b.children) - 1; i >= 0; i-- {
		child := b.children[i]
		r := child.Rect()
		if r.Contains(x, y) {
			return child.HitTest(x-r.Min.X, y-r.Min.Y)
		}
	}
	return HitResult{Widget: b.outer(), Pos: geom.Pt(x, y)}
}

// Event is the default handler. Paint events fan out to every child
// intersecting the painted rectangle, translated into the child's
// local space; the owner drives painting of its subtree. All other
// kinds are ignored.
func (b *Base) Event(e event.Event) {
	p, ok := e.(*event.Paint)
	if !ok {
		return
	}
	r := p.Rect
	if r.Empty() {
		r = geom.Rect(0, 0, b.rect.Dx(), b.rect.Dy())
	}
	for _, child := range b.children {
		cr := child.Rect()
		if !r.Overlaps(cr) {
			continue
		}
		local, ok := r.Clip(cr)
		if !ok {
			continue
		}
		child.Event(&event.Paint{Rect: local.Sub(cr.Min)})
	}
}

// Invalidate requests a repaint of the widget's rectangle. It is a
// fire-and-forget visual hint and a no-op for widgets not mounted on
// a window.
func (b *Base) Invalidate() {
	if b.win != nil {
		_ = b.win.Update(b.rect)
	}
}
