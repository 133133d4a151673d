package browser

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ParseUserURL turns location-box input into an absolute URL. Input
// without a scheme gets "http://" prepended, so "example.org/x" works
// the way users expect.
func ParseUserURL(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("empty location")
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("bad location %q: %w", input, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("bad location %q: no host", input)
	}
	return u.String(), nil
}

// Completions ranks candidates against the partial input typed into
// the location box. Prefix matches come first, then near matches by
// edit distance; candidates further than maxDistance edits away are
// dropped. At most limit results are returned.
func Completions(input string, candidates []string, limit int) []string {
	input = strings.TrimSpace(input)
	if input == "" || limit <= 0 {
		return nil
	}
	const maxDistance = 10

	type scored struct {
		url  string
		dist int
	}
	var prefix, near []scored
	seen := make(map[string]bool)
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		stripped := strings.TrimPrefix(strings.TrimPrefix(c, "http://"), "https://")
		if strings.HasPrefix(c, input) || strings.HasPrefix(stripped, input) {
			prefix = append(prefix, scored{c, 0})
			continue
		}
		d := levenshtein.ComputeDistance(input, stripped)
		if d <= maxDistance {
			near = append(near, scored{c, d})
		}
	}
	sort.SliceStable(near, func(i, j int) bool { return near[i].dist < near[j].dist })

	out := make([]string, 0, limit)
	for _, s := range append(prefix, near...) {
		if len(out) == limit {
			break
		}
		out = append(out, s.url)
	}
	return out
}
