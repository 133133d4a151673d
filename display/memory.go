package display

import (
	"fmt"
	"sync"

	"github.com/elizafairlady/go-libgui/geom"
)

// Memory is an in-process Display for tests and headless runs. It
// records every invalidation and paint notice per window so tests can
// assert on the exact traffic the window layer generates.
type Memory struct {
	mu      sync.Mutex
	nextID  WindowID
	windows map[WindowID]*memoryWindow
}

type memoryWindow struct {
	Rect        geom.Rectangle
	Title       string
	Background  Color
	Invalidated []geom.Rectangle
	Painted     []geom.Rectangle
}

// NewMemory returns an empty in-process display.
func NewMemory() *Memory {
	return &Memory{windows: make(map[WindowID]*memoryWindow)}
}

func (m *Memory) lookup(id WindowID) (*memoryWindow, error) {
	w, ok := m.windows[id]
	if !ok {
		return nil, fmt.Errorf("window %d: %w", id, ErrUnknownWindow)
	}
	return w, nil
}

func (m *Memory) CreateWindow(r geom.Rectangle, title string, background Color) (WindowID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.windows[id] = &memoryWindow{Rect: r, Title: title, Background: background}
	return id, nil
}

func (m *Memory) DestroyWindow(id WindowID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.lookup(id); err != nil {
		return err
	}
	delete(m.windows, id)
	return nil
}

func (m *Memory) SetWindowTitle(id WindowID, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, err := m.lookup(id)
	if err != nil {
		return err
	}
	w.Title = title
	return nil
}

func (m *Memory) WindowTitle(id WindowID) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, err := m.lookup(id)
	if err != nil {
		return "", err
	}
	return w.Title, nil
}

func (m *Memory) SetWindowRect(id WindowID, r geom.Rectangle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, err := m.lookup(id)
	if err != nil {
		return err
	}
	w.Rect = r
	return nil
}

func (m *Memory) InvalidateWindow(id WindowID, r geom.Rectangle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, err := m.lookup(id)
	if err != nil {
		return err
	}
	if r.Empty() {
		r = geom.Rect(0, 0, w.Rect.Dx(), w.Rect.Dy())
	}
	w.Invalidated = append(w.Invalidated, r)
	return nil
}

func (m *Memory) NotifyPaintFinished(id WindowID, r geom.Rectangle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, err := m.lookup(id)
	if err != nil {
		return err
	}
	w.Painted = append(w.Painted, r)
	return nil
}

// WindowRect returns the current rectangle of id.
func (m *Memory) WindowRect(id WindowID) (geom.Rectangle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, err := m.lookup(id)
	if err != nil {
		return geom.ZR, err
	}
	return w.Rect, nil
}

// Invalidations returns the invalidation rectangles recorded for id,
// oldest first.
func (m *Memory) Invalidations(id WindowID) []geom.Rectangle {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.windows[id]
	if !ok {
		return nil
	}
	out := make([]geom.Rectangle, len(w.Invalidated))
	copy(out, w.Invalidated)
	return out
}

// PaintNotices returns the paint-finished rectangles recorded for id,
// oldest first.
func (m *Memory) PaintNotices(id WindowID) []geom.Rectangle {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.windows[id]
	if !ok {
		return nil
	}
	out := make([]geom.Rectangle, len(w.Painted))
	copy(out, w.Painted)
	return out
}

// Live reports whether id names a window that exists and has not been
// destroyed.
func (m *Memory) Live(id WindowID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.windows[id]
	return ok
}

var _ Display = (*Memory)(nil)
