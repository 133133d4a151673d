package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elizafairlady/go-libgui/event"
	"github.com/elizafairlady/go-libgui/geom"
)

// recorder remembers every event delivered to it.
type recorder struct {
	Base
	events []event.Event
}

func newRecorder(r geom.Rectangle) *recorder {
	w := &recorder{}
	w.InitBase(w)
	w.SetRect(r)
	return w
}

func (w *recorder) Event(e event.Event) {
	w.events = append(w.events, e)
	w.Base.Event(e)
}

func TestHitTestFallsBackToSelf(t *testing.T) {
	root := newRecorder(geom.Rect(0, 0, 100, 100))
	res := root.HitTest(7, 9)
	require.Same(t, root, res.Widget)
	assert.Equal(t, geom.Pt(7, 9), res.Pos)
}

func TestHitTestTranslatesIntoChild(t *testing.T) {
	root := newRecorder(geom.Rect(0, 0, 100, 100))
	child := newRecorder(geom.Rect(40, 40, 60, 60))
	root.AddChild(child)

	res := root.HitTest(50, 50)
	require.Same(t, child, res.Widget)
	assert.Equal(t, geom.Pt(10, 10), res.Pos)

	// Outside the child, the root is the target.
	res = root.HitTest(5, 5)
	require.Same(t, root, res.Widget)
}

func TestHitTestDeepestAndTopmost(t *testing.T) {
	root := newRecorder(geom.Rect(0, 0, 100, 100))
	inner := newRecorder(geom.Rect(10, 10, 90, 90))
	leaf := newRecorder(geom.Rect(20, 20, 40, 40)) // 30..50 in root space
	root.AddChild(inner)
	inner.AddChild(leaf)

	res := root.HitTest(35, 35)
	require.Same(t, leaf, res.Widget)
	assert.Equal(t, geom.Pt(5, 5), res.Pos)

	// A later sibling covering the same area wins.
	top := newRecorder(geom.Rect(0, 0, 100, 100))
	root.AddChild(top)
	res = root.HitTest(35, 35)
	require.Same(t, top, res.Widget)
}

func TestPaintFanOut(t *testing.T) {
	root := newRecorder(geom.Rect(0, 0, 100, 100))
	left := newRecorder(geom.Rect(0, 0, 50, 100))
	right := newRecorder(geom.Rect(50, 0, 100, 100))
	root.AddChild(left)
	root.AddChild(right)

	root.Event(&event.Paint{Rect: geom.Rect(0, 0, 40, 100)})

	require.Len(t, left.events, 1)
	p, ok := left.events[0].(*event.Paint)
	require.True(t, ok)
	assert.True(t, p.Rect.Eq(geom.Rect(0, 0, 40, 100)))
	assert.Empty(t, right.events, "paint outside right child should not reach it")
}

func TestPaintEmptyRectMeansEverything(t *testing.T) {
	root := newRecorder(geom.Rect(0, 0, 100, 100))
	child := newRecorder(geom.Rect(60, 60, 90, 90))
	root.AddChild(child)

	root.Event(&event.Paint{})

	require.Len(t, child.events, 1)
	p := child.events[0].(*event.Paint)
	assert.True(t, p.Rect.Eq(geom.Rect(0, 0, 30, 30)))
}

func TestSetWindowPropagates(t *testing.T) {
	root := newRecorder(geom.Rect(0, 0, 100, 100))
	child := newRecorder(geom.Rect(0, 0, 50, 50))
	root.AddChild(child)

	win := &fakeWindow{}
	root.SetWindow(win)
	assert.Same(t, Window(win), child.Window())

	// A child added after mounting inherits the window too.
	late := newRecorder(geom.Rect(50, 0, 100, 50))
	root.AddChild(late)
	assert.Same(t, Window(win), late.Window())

	root.RemoveChild(child)
	assert.Nil(t, child.Window())
}

func TestRemoveChild(t *testing.T) {
	root := newRecorder(geom.Rect(0, 0, 100, 100))
	child := newRecorder(geom.Rect(0, 0, 100, 100))
	root.AddChild(child)
	require.True(t, root.RemoveChild(child))
	assert.False(t, root.RemoveChild(child))
	res := root.HitTest(1, 1)
	assert.Same(t, root, res.Widget)
}
