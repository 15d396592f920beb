package store

import (
	"context"
	"strings"

	"daybook/internal/model"
)

const (
	ratingGlyph  = "★"
	noDetails    = "No additional details."
	blockDivider = "--------------------------"
)

// Export renders every entry, in collection order, as a fixed plain-text
// block. Pure: no side effects, no persistence.
func (s *Store) Export() string {
	var b strings.Builder
	for _, e := range s.entries {
		b.WriteString("Date: " + e.DateText() + "\n")
		b.WriteString("Rating: " + strings.Repeat(ratingGlyph, e.Rating) + "\n")
		b.WriteString("Nutshell: " + e.Summary + "\n")
		details := noDetails
		if e.Details != nil {
			details = *e.Details
		}
		b.WriteString("Details: " + details + "\n")
		b.WriteString(blockDivider + "\n")
	}
	return b.String()
}

// Import appends previously exported entries verbatim, keeping their IDs
// and dates, and persists once. Returns the number imported.
func (s *Store) Import(ctx context.Context, entries []model.Entry) int {
	if len(entries) == 0 {
		return 0
	}
	s.entries = append(s.entries, entries...)
	s.persist(ctx)
	s.notify()
	return len(entries)
}
