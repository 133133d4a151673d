package window

import (
	"sync"

	"github.com/elizafairlady/go-libgui/display"
)

// Registry maps display-assigned window ids to their Window objects so
// that incoming raw events can be routed to the right window. Ids are
// registered at creation and removed when the window closes.
type Registry struct {
	mu      sync.Mutex
	windows map[display.WindowID]*Window
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{windows: make(map[display.WindowID]*Window)}
}

// Register records w under its id. Registering the same id twice
// replaces the earlier entry.
func (reg *Registry) Register(w *Window) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.windows[w.ID()] = w
}

// Lookup returns the window registered under id, or nil.
func (reg *Registry) Lookup(id display.WindowID) *Window {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.windows[id]
}

// Unregister removes id and reports whether it was present.
func (reg *Registry) Unregister(id display.WindowID) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, ok := reg.windows[id]; !ok {
		return false
	}
	delete(reg.windows, id)
	return true
}

// Len returns the number of registered windows.
func (reg *Registry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.windows)
}

// IDs returns the ids of every registered window, in no particular
// order.
func (reg *Registry) IDs() []display.WindowID {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	ids := make([]display.WindowID, 0, len(reg.windows))
	for id := range reg.windows {
		ids = append(ids, id)
	}
	return ids
}
