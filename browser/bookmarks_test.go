package browser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarksMissingFileIsEmpty(t *testing.T) {
	b, err := LoadBookmarks(filepath.Join(t.TempDir(), "bookmarks.json"))
	require.NoError(t, err)
	assert.Empty(t, b.All())
}

func TestBookmarksRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.json")
	b, err := LoadBookmarks(path)
	require.NoError(t, err)

	b.Add("Example", "http://example.org/")
	b.Add("Other", "http://other.net/")
	require.NoError(t, b.Save())

	loaded, err := LoadBookmarks(path)
	require.NoError(t, err)
	assert.Equal(t, b.All(), loaded.All())
	assert.True(t, loaded.Contains("http://example.org/"))
	assert.False(t, loaded.Contains("http://nowhere/"))
}

func TestBookmarksAddUpdatesTitle(t *testing.T) {
	b := &Bookmarks{}
	b.Add("Old", "http://example.org/")
	b.Add("New", "http://example.org/")

	all := b.All()
	require.Len(t, all, 1)
	assert.Equal(t, "New", all[0].Title)
}

func TestBookmarksRemove(t *testing.T) {
	b := &Bookmarks{}
	b.Add("Example", "http://example.org/")
	assert.True(t, b.Remove("http://example.org/"))
	assert.False(t, b.Remove("http://example.org/"))
	assert.Empty(t, b.All())
}

func TestBookmarksSaveCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "bookmarks.json")
	b := &Bookmarks{path: path}
	b.Add("Example", "http://example.org/")
	require.NoError(t, b.Save())

	loaded, err := LoadBookmarks(path)
	require.NoError(t, err)
	assert.Len(t, loaded.All(), 1)
}
