package suggest

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Matcher selects the catalog entries that match a query.
type Matcher interface {
	Match(catalog []Item, query string) []Item
}

// MatchMode names a Matcher in configuration.
type MatchMode string

const (
	MatchSubstring MatchMode = "substring"
	MatchFuzzy     MatchMode = "fuzzy"
)

// IsValid reports whether m is a known match mode.
func (m MatchMode) IsValid() bool {
	switch m {
	case MatchSubstring, MatchFuzzy:
		return true
	default:
		return false
	}
}

// NewMatcher returns the Matcher for mode. Unknown modes fall back to substring matching.
func NewMatcher(mode MatchMode) Matcher {
	if mode == MatchFuzzy {
		return FuzzyMatcher{}
	}
	return SubstringMatcher{}
}

// Filter returns the catalog entries whose label or value contains query,
// ignoring case. Catalog order is kept. An empty query returns the catalog.
func Filter(catalog []Item, query string) []Item {
	return SubstringMatcher{}.Match(catalog, query)
}

// SubstringMatcher matches case-insensitive substrings of Label or Value.
type SubstringMatcher struct{}

// Match implements Matcher.
func (SubstringMatcher) Match(catalog []Item, query string) []Item {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return catalog
	}

	out := make([]Item, 0, len(catalog))
	for _, item := range catalog {
		if strings.Contains(strings.ToLower(item.DisplayLabel()), needle) ||
			strings.Contains(strings.ToLower(item.Value), needle) {
			out = append(out, item)
		}
	}
	return out
}

// FuzzyMatcher ranks entries by fuzzy score against Label or Value.
// Ties keep catalog order.
type FuzzyMatcher struct{}

// Match implements Matcher.
func (FuzzyMatcher) Match(catalog []Item, query string) []Item {
	needle := strings.TrimSpace(query)
	if needle == "" {
		return catalog
	}

	labels := make([]string, len(catalog))
	values := make([]string, len(catalog))
	for idx, item := range catalog {
		labels[idx] = item.DisplayLabel()
		values[idx] = item.Value
	}

	best := make(map[int]int)
	for _, matches := range []fuzzy.Matches{fuzzy.Find(needle, labels), fuzzy.Find(needle, values)} {
		for _, m := range matches {
			if score, ok := best[m.Index]; !ok || m.Score > score {
				best[m.Index] = m.Score
			}
		}
	}

	indexes := make([]int, 0, len(best))
	for idx := range best {
		indexes = append(indexes, idx)
	}
	sort.Slice(indexes, func(a, b int) bool {
		sa, sb := best[indexes[a]], best[indexes[b]]
		if sa != sb {
			return sa > sb
		}
		return indexes[a] < indexes[b]
	})

	out := make([]Item, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, catalog[idx])
	}
	return out
}

// Closest returns up to limit catalog values that fuzzily resemble value,
// best first. Used for "did you mean" hints.
func Closest(catalog []Item, value string, limit int) []string {
	if value == "" || limit <= 0 {
		return nil
	}

	values := make([]string, len(catalog))
	for idx, item := range catalog {
		values[idx] = item.Value
	}

	matches := fuzzy.Find(value, values)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, values[m.Index])
	}
	return out
}
