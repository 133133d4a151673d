package eventloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elizafairlady/go-libgui/event"
)

type sink struct {
	got []event.Event
}

func (s *sink) Event(e event.Event) {
	s.got = append(s.got, e)
}

func TestDispatchFIFO(t *testing.T) {
	l := New()
	s := &sink{}

	l.Post(s, &event.Focus{Type: event.FocusOut})
	l.Post(s, &event.Focus{Type: event.FocusIn})
	assert.Equal(t, 2, l.Pending())

	n := l.DispatchPending()
	assert.Equal(t, 2, n)
	require.Len(t, s.got, 2)
	assert.Equal(t, event.FocusOut, s.got[0].Kind())
	assert.Equal(t, event.FocusIn, s.got[1].Kind())
	assert.Zero(t, l.Pending())
}

func TestDispatchEmpty(t *testing.T) {
	l := New()
	assert.Zero(t, l.DispatchPending())
}

func TestNilTargetDropped(t *testing.T) {
	l := New()
	l.Post(nil, &event.Generic{Type: event.ShowRequest})
	assert.Zero(t, l.Pending())
}

func TestWakeCoalesced(t *testing.T) {
	l := New()
	s := &sink{}
	l.Post(s, &event.Generic{Type: event.ShowRequest})
	l.Post(s, &event.Generic{Type: event.HideRequest})

	select {
	case <-l.Wake():
	default:
		t.Fatal("expected wake signal after post")
	}
	// One signal covers both posts.
	select {
	case <-l.Wake():
		t.Fatal("wake signals should be coalesced")
	default:
	}
	assert.Equal(t, 2, l.DispatchPending())
}

func TestPostDuringDispatch(t *testing.T) {
	l := New()
	a := &sink{}
	b := &sink{}

	var reposter repostTarget
	reposter = repostTarget{loop: l, next: b}
	l.Post(a, &event.Focus{Type: event.FocusOut})
	l.Post(&reposter, &event.Focus{Type: event.FocusIn})

	n := l.DispatchPending()
	assert.Equal(t, 3, n)
	require.Len(t, b.got, 1)
	assert.Equal(t, event.FocusIn, b.got[0].Kind())
}

func TestPostFuncOrderedWithEvents(t *testing.T) {
	l := New()
	s := &sink{}
	var order []string

	l.Post(s, &event.Focus{Type: event.FocusOut})
	l.PostFunc(func() { order = append(order, "func") })
	l.Post(s, &event.Focus{Type: event.FocusIn})

	l.DispatchPending()
	require.Len(t, s.got, 2)
	assert.Equal(t, []string{"func"}, order)
	assert.Equal(t, event.FocusOut, s.got[0].Kind())
	assert.Equal(t, event.FocusIn, s.got[1].Kind())
}

type repostTarget struct {
	loop *Loop
	next Target
}

func (r *repostTarget) Event(e event.Event) {
	r.loop.Post(r.next, e)
}
