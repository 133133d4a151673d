// Package browser implements the browser chrome: a tab widget with
// toolbar, location box, status bar, history, and bookmarks, mounted
// on a page view that does the actual page handling.
package browser

// History is the per-tab navigation history: a list of visited URLs
// and a cursor. Navigating to a new page from the middle of the list
// discards the forward entries.
type History struct {
	entries []string
	index   int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{index: -1}
}

// Push records a visit to url as the new current entry, dropping any
// forward entries.
func (h *History) Push(url string) {
	h.entries = append(h.entries[:h.index+1], url)
	h.index = len(h.entries) - 1
}

// Current returns the entry under the cursor, or "".
func (h *History) Current() string {
	if h.index < 0 {
		return ""
	}
	return h.entries[h.index]
}

// CanGoBack reports whether Back would succeed.
func (h *History) CanGoBack() bool {
	return h.index > 0
}

// CanGoForward reports whether Forward would succeed.
func (h *History) CanGoForward() bool {
	return h.index >= 0 && h.index < len(h.entries)-1
}

// Back moves the cursor one entry back and returns the new current
// URL.
func (h *History) Back() (string, bool) {
	if !h.CanGoBack() {
		return "", false
	}
	h.index--
	return h.entries[h.index], true
}

// Forward moves the cursor one entry forward and returns the new
// current URL.
func (h *History) Forward() (string, bool) {
	if !h.CanGoForward() {
		return "", false
	}
	h.index++
	return h.entries[h.index], true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// All returns a copy of the entries, oldest first.
func (h *History) All() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
