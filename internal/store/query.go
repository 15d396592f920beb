package store

import (
	"strings"

	"daybook/internal/model"
)

// Query returns the entries whose formatted date or summary contains term,
// case-insensitively. An empty term returns the whole collection; matches
// keep their original order.
func (s *Store) Query(term string) []model.Entry {
	if term == "" {
		return s.Entries()
	}

	needle := strings.ToLower(term)
	var out []model.Entry
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e.DateText()), needle) ||
			strings.Contains(strings.ToLower(e.Summary), needle) {
			out = append(out, e)
		}
	}
	return out
}
