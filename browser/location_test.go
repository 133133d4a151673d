package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"http://example.org/", "http://example.org/"},
		{"https://example.org/a?b=c", "https://example.org/a?b=c"},
		{"example.org", "http://example.org"},
		{"example.org/path", "http://example.org/path"},
		{"  example.org  ", "http://example.org"},
	}
	for _, c := range cases {
		got, err := ParseUserURL(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.Equal(t, c.want, got, "input %q", c.in)
	}
}

func TestParseUserURLRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "http://"} {
		_, err := ParseUserURL(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestCompletionsPrefixFirst(t *testing.T) {
	candidates := []string{
		"http://example.org/",
		"http://example.com/",
		"http://other.net/",
	}
	got := Completions("example.org", candidates, 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "http://example.org/", got[0])
	assert.Contains(t, got, "http://example.com/")
}

func TestCompletionsLimitAndEmpty(t *testing.T) {
	candidates := []string{"http://a.org/", "http://b.org/", "http://c.org/"}
	assert.Len(t, Completions("a.org", candidates, 2), 2)
	assert.Nil(t, Completions("", candidates, 5))
	assert.Nil(t, Completions("a.org", candidates, 0))
}

func TestCompletionsDropsFarMatches(t *testing.T) {
	got := Completions("zz", []string{"http://completely-unrelated-very-long-host.example/"}, 5)
	assert.Empty(t, got)
}
