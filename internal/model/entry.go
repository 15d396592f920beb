// Package model defines the core journal entry type.
package model

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	// MinRating and MaxRating bound the mood rating scale.
	MinRating = 1
	MaxRating = 5

	// MaxSummaryLen caps the summary at input time (runes, not bytes).
	MaxSummaryLen = 50

	// DateLayout is the human-readable date rendering used by export and
	// search. No time component.
	DateLayout = "Jan 2, 2006"
)

// ErrInvalidEntry is returned by Validate for structurally invalid entries.
var ErrInvalidEntry = errors.New("invalid entry")

// Entry represents one journal record. Details is nil when the user wrote
// none; an absent details stays absent across the persistence round-trip.
type Entry struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Rating  int       `json:"rating"`
	Summary string    `json:"summary"`
	Details *string   `json:"details,omitempty"`
}

var entropy = rand.New(rand.NewSource(time.Now().UnixNano()))

func newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// NewEntry builds an entry stamped with a fresh ULID and the current time.
// The timestamp is UTC truncated to seconds so encoding round-trips exactly.
// An empty details string means no details.
func NewEntry(rating int, summary, details string) Entry {
	e := Entry{
		ID:      newID(),
		Date:    time.Now().UTC().Truncate(time.Second),
		Rating:  rating,
		Summary: TruncateSummary(summary),
	}
	if details != "" {
		e.Details = &details
	}
	return e
}

// TruncateSummary applies the input cap: summaries longer than MaxSummaryLen
// runes are cut, not rejected.
func TruncateSummary(s string) string {
	r := []rune(s)
	if len(r) <= MaxSummaryLen {
		return s
	}
	return string(r[:MaxSummaryLen])
}

// Validate checks the entry invariants. The store itself accepts entries
// verbatim; callers run this at the input boundary.
func (e Entry) Validate() error {
	if e.Rating < MinRating || e.Rating > MaxRating {
		return fmt.Errorf("%w: rating %d not in [%d,%d]", ErrInvalidEntry, e.Rating, MinRating, MaxRating)
	}
	if strings.TrimSpace(e.Summary) == "" {
		return fmt.Errorf("%w: summary is empty", ErrInvalidEntry)
	}
	return nil
}

// DateText renders the entry date the way export and search present it.
func (e Entry) DateText() string {
	return e.Date.Format(DateLayout)
}
