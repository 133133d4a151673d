package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, "", h.Current())
	assert.False(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())
	_, ok := h.Back()
	assert.False(t, ok)
	_, ok = h.Forward()
	assert.False(t, ok)
}

func TestHistoryBackForward(t *testing.T) {
	h := NewHistory()
	h.Push("http://a/")
	h.Push("http://b/")
	h.Push("http://c/")

	assert.Equal(t, "http://c/", h.Current())
	assert.True(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())

	url, ok := h.Back()
	require.True(t, ok)
	assert.Equal(t, "http://b/", url)
	assert.True(t, h.CanGoForward())

	url, ok = h.Forward()
	require.True(t, ok)
	assert.Equal(t, "http://c/", url)
}

func TestHistoryPushDropsForward(t *testing.T) {
	h := NewHistory()
	h.Push("http://a/")
	h.Push("http://b/")
	h.Push("http://c/")
	h.Back()
	h.Back()

	h.Push("http://d/")
	assert.Equal(t, "http://d/", h.Current())
	assert.False(t, h.CanGoForward())
	assert.Equal(t, []string{"http://a/", "http://d/"}, h.All())
}
