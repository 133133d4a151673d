package browser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
)

// Bookmark is one saved page.
type Bookmark struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Bookmarks is the saved-page list, persisted as a JSON file.
type Bookmarks struct {
	path    string
	entries []Bookmark
}

// LoadBookmarks reads the bookmark file at path. A missing file is an
// empty list, not an error.
func LoadBookmarks(path string) (*Bookmarks, error) {
	b := &Bookmarks{path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read bookmarks: %w", err)
	}
	if err := sonic.Unmarshal(data, &b.entries); err != nil {
		return nil, fmt.Errorf("parse bookmarks %s: %w", path, err)
	}
	return b, nil
}

// Save writes the list back to its file.
func (b *Bookmarks) Save() error {
	data, err := sonic.MarshalIndent(b.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save bookmarks: %w", err)
		}
	}
	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		return fmt.Errorf("save bookmarks: %w", err)
	}
	return nil
}

// Contains reports whether url is bookmarked.
func (b *Bookmarks) Contains(url string) bool {
	for _, e := range b.entries {
		if e.URL == url {
			return true
		}
	}
	return false
}

// Add appends a bookmark; adding an already-bookmarked URL updates its
// title instead.
func (b *Bookmarks) Add(title, url string) {
	for i, e := range b.entries {
		if e.URL == url {
			b.entries[i].Title = title
			return
		}
	}
	b.entries = append(b.entries, Bookmark{Title: title, URL: url})
}

// Remove deletes the bookmark for url and reports whether it existed.
func (b *Bookmarks) Remove(url string) bool {
	for i, e := range b.entries {
		if e.URL == url {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return true
		}
	}
	return false
}

// All returns a copy of the bookmark list.
func (b *Bookmarks) All() []Bookmark {
	out := make([]Bookmark, len(b.entries))
	copy(out, b.entries)
	return out
}
