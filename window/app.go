// Package window implements top-level windows over a display backend:
// the id registry, event routing into the widget tree, the keyboard
// focus protocol, and owner-driven painting.
package window

import (
	"go.uber.org/zap"

	"github.com/elizafairlady/go-libgui/display"
	"github.com/elizafairlady/go-libgui/eventloop"
	"github.com/elizafairlady/go-libgui/geom"
)

// App ties together the display backend, the deferred event loop, and
// the window registry. All windows of a process share one App.
type App struct {
	Registry *Registry
	Display  display.Display
	Loop     *eventloop.Loop

	log *zap.Logger
}

// Options configures a new window.
type Options struct {
	Rect       geom.Rectangle
	Title      string
	Background display.Color
}

// NewApp returns an App over the given backend. A nil logger is
// replaced with a no-op one.
func NewApp(disp display.Display, loop *eventloop.Loop, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		Registry: NewRegistry(),
		Display:  disp,
		Loop:     loop,
		log:      log,
	}
}

// CreateWindow asks the display layer for a window and registers it.
// On failure the returned error wraps a *CreationError and no state
// changes.
func (a *App) CreateWindow(opts Options) (*Window, error) {
	id, err := a.Display.CreateWindow(opts.Rect, opts.Title, opts.Background)
	if err != nil {
		return nil, &CreationError{Err: err}
	}
	w := &Window{
		app:  a,
		id:   id,
		rect: opts.Rect,
		log:  a.log.With(zap.Int("window", int(id))),
	}
	a.Registry.Register(w)
	a.log.Debug("window created",
		zap.Int("window", int(id)),
		zap.String("title", opts.Title))
	return w, nil
}

// Dispatch routes a raw display event to the window it is addressed
// to. Events for unknown ids are logged and dropped; a stale id after
// a window closes is normal traffic, not a fault.
func (a *App) Dispatch(raw display.RawEvent) {
	w := a.Registry.Lookup(raw.Window)
	if w == nil {
		a.log.Debug("event for unknown window dropped",
			zap.Int("window", int(raw.Window)),
			zap.Stringer("kind", raw.Event.Kind()))
		return
	}
	w.Event(raw.Event)
}
