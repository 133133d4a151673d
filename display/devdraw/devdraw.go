// Package devdraw is a display backend over the devdraw graphics
// server, reached through 9fans.net/go/draw. Each window is its own
// devdraw connection; mouse and keyboard traffic from every connection
// is funneled into one channel of raw events tagged with the window
// id.
package devdraw

import (
	"fmt"
	"image"
	"sync"

	"9fans.net/go/draw"
	"go.uber.org/zap"

	"github.com/elizafairlady/go-libgui/display"
	"github.com/elizafairlady/go-libgui/event"
	"github.com/elizafairlady/go-libgui/geom"
)

// Backend implements display.Display over devdraw.
type Backend struct {
	log    *zap.Logger
	font   string
	events chan display.RawEvent

	mu     sync.Mutex
	nextID display.WindowID
	conns  map[display.WindowID]*conn
}

type conn struct {
	d     *draw.Display
	mctl  *draw.Mousectl
	kctl  *draw.Keyboardctl
	title string
	rect  geom.Rectangle
	done  chan struct{}
}

// New returns a backend using the given font (empty for the devdraw
// default). A nil logger is replaced with a no-op one.
func New(font string, log *zap.Logger) *Backend {
	if log == nil {
		log = zap.NewNop()
	}
	return &Backend{
		log:    log,
		font:   font,
		events: make(chan display.RawEvent, 64),
		conns:  make(map[display.WindowID]*conn),
	}
}

// Events returns the stream of raw window events. The channel stays
// open for the backend's lifetime.
func (b *Backend) Events() <-chan display.RawEvent {
	return b.events
}

func (b *Backend) lookup(id display.WindowID) (*conn, error) {
	c, ok := b.conns[id]
	if !ok {
		return nil, fmt.Errorf("window %d: %w", id, display.ErrUnknownWindow)
	}
	return c, nil
}

// CreateWindow opens a new devdraw connection sized to r and starts
// the event pumps for it.
func (b *Backend) CreateWindow(r geom.Rectangle, title string, background display.Color) (display.WindowID, error) {
	errch := make(chan error, 1)
	winsize := fmt.Sprintf("%dx%d", r.Dx(), r.Dy())
	d, err := draw.Init(errch, b.font, title, winsize)
	if err != nil {
		return -1, fmt.Errorf("devdraw init: %w", err)
	}
	if background != 0 {
		bg, err := d.AllocImage(image.Rect(0, 0, 1, 1), draw.RGBA32, true, draw.Color(background))
		if err == nil {
			d.ScreenImage.Draw(d.ScreenImage.R, bg, nil, image.Point{})
			d.Flush()
		}
	}

	c := &conn{
		d:     d,
		mctl:  d.InitMouse(),
		kctl:  d.InitKeyboard(),
		title: title,
		rect:  r,
		done:  make(chan struct{}),
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.conns[id] = c
	b.mu.Unlock()

	go b.mouseproc(id, c)
	go b.keyboardproc(id, c)
	go b.errproc(id, errch)

	b.log.Debug("devdraw window opened",
		zap.Int("window", int(id)), zap.String("title", title))
	return id, nil
}

func (b *Backend) DestroyWindow(id display.WindowID) error {
	b.mu.Lock()
	c, err := b.lookup(id)
	if err == nil {
		delete(b.conns, id)
	}
	b.mu.Unlock()
	if err != nil {
		return err
	}
	close(c.done)
	c.d.Close()
	return nil
}

// SetWindowTitle records the title. Devdraw offers no retitle call
// after Init, so only the local record changes.
func (b *Backend) SetWindowTitle(id display.WindowID, title string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, err := b.lookup(id)
	if err != nil {
		return err
	}
	c.title = title
	return nil
}

func (b *Backend) WindowTitle(id display.WindowID) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, err := b.lookup(id)
	if err != nil {
		return "", err
	}
	return c.title, nil
}

// SetWindowRect records the rectangle. Devdraw windows are moved and
// resized by the window manager, not the client, so only the local
// record changes.
func (b *Backend) SetWindowRect(id display.WindowID, r geom.Rectangle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	c, err := b.lookup(id)
	if err != nil {
		return err
	}
	c.rect = r
	return nil
}

// InvalidateWindow turns a repaint request into a paint event on the
// event stream, so painting always happens on the UI goroutine.
func (b *Backend) InvalidateWindow(id display.WindowID, r geom.Rectangle) error {
	b.mu.Lock()
	_, err := b.lookup(id)
	b.mu.Unlock()
	if err != nil {
		return err
	}
	b.events <- display.RawEvent{Window: id, Event: &event.Paint{Rect: r}}
	return nil
}

// NotifyPaintFinished flushes the connection so drawn output reaches
// the screen.
func (b *Backend) NotifyPaintFinished(id display.WindowID, r geom.Rectangle) error {
	b.mu.Lock()
	c, err := b.lookup(id)
	b.mu.Unlock()
	if err != nil {
		return err
	}
	if err := c.d.Flush(); err != nil {
		return fmt.Errorf("devdraw flush: %w", err)
	}
	return nil
}

// mouseproc converts devdraw mouse states into move/press/release
// events. Devdraw reports absolute button state; the transition from
// the previous state decides the event kind.
func (b *Backend) mouseproc(id display.WindowID, c *conn) {
	prev := 0
	for {
		select {
		case <-c.done:
			return
		case m := <-c.mctl.C:
			pos := geom.Pt(m.X-c.d.ScreenImage.R.Min.X, m.Y-c.d.ScreenImage.R.Min.Y)
			changed := m.Buttons ^ prev
			var ev *event.Mouse
			switch {
			case changed&m.Buttons != 0:
				ev = &event.Mouse{Type: event.MouseDown, Pos: pos, Buttons: m.Buttons, Button: changed & m.Buttons}
			case changed != 0:
				ev = &event.Mouse{Type: event.MouseUp, Pos: pos, Buttons: m.Buttons, Button: changed &^ m.Buttons}
			default:
				ev = &event.Mouse{Type: event.MouseMove, Pos: pos, Buttons: m.Buttons}
			}
			prev = m.Buttons
			b.send(id, c, ev)
		case <-c.mctl.Resize:
			if err := c.d.Attach(draw.RefNone); err != nil {
				b.log.Warn("devdraw reattach failed",
					zap.Int("window", int(id)), zap.Error(err))
				continue
			}
			b.send(id, c, &event.Paint{})
		}
	}
}

// keyboardproc converts devdraw runes into key events. Control
// characters arrive as raw runes; they are reported as the letter plus
// ModCtrl. Special keys use the KF|n code convention.
func (b *Backend) keyboardproc(id display.WindowID, c *conn) {
	for {
		select {
		case <-c.done:
			return
		case r := <-c.kctl.C:
			b.send(id, c, keyEvent(r))
		}
	}
}

func keyEvent(r rune) *event.Key {
	switch {
	case r == '\n' || r == '\r' || r == '\t':
		return &event.Key{Type: event.KeyDown, Rune: r}
	case r == '\b':
		return &event.Key{Type: event.KeyDown, Rune: r, Code: event.CodeBackspace}
	case r < ' ':
		// Ctrl-A .. Ctrl-Z arrive as 0x01 .. 0x1A.
		return &event.Key{Type: event.KeyDown, Rune: r + 'a' - 1, Mod: event.ModCtrl}
	case r >= event.CodeFn:
		return &event.Key{Type: event.KeyDown, Code: int(r)}
	default:
		return &event.Key{Type: event.KeyDown, Rune: r}
	}
}

func (b *Backend) errproc(id display.WindowID, errch <-chan error) {
	for err := range errch {
		b.log.Warn("devdraw connection error",
			zap.Int("window", int(id)), zap.Error(err))
	}
}

func (b *Backend) send(id display.WindowID, c *conn, e event.Event) {
	select {
	case b.events <- display.RawEvent{Window: id, Event: e}:
	case <-c.done:
	}
}

var _ display.Display = (*Backend)(nil)
