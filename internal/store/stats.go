package store

// Stats summarizes the journal.
type Stats struct {
	TotalEntries  int         `json:"total_entries"`
	AverageRating float64     `json:"average_rating"`
	Ratings       map[int]int `json:"ratings"`
	FirstEntry    string      `json:"first_entry,omitempty"`
	LastEntry     string      `json:"last_entry,omitempty"`
}

// Stats returns entry counts, the average rating, a per-rating histogram,
// and the first and last entry dates.
func (s *Store) Stats() Stats {
	st := Stats{TotalEntries: len(s.entries), Ratings: map[int]int{}}
	if len(s.entries) == 0 {
		return st
	}

	sum := 0
	for _, e := range s.entries {
		sum += e.Rating
		st.Ratings[e.Rating]++
	}
	st.AverageRating = float64(sum) / float64(len(s.entries))
	st.FirstEntry = s.entries[0].DateText()
	st.LastEntry = s.entries[len(s.entries)-1].DateText()
	return st
}
