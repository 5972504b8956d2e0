package submission

import "strings"

// Filter selects submissions from a snapshot. Zero-valued fields match everything.
type Filter struct {
	Status     Status `json:"status,omitempty"`
	SearchTerm string `json:"searchTerm,omitempty"`
	Category   string `json:"category,omitempty"`
}

// Matches reports whether s passes the status, text and category predicates.
// The text predicate is a case-insensitive substring match against the title or the description.
func (f Filter) Matches(s Submission) bool {
	matchesStatus := f.Status == "" || s.Status == f.Status
	term := strings.ToLower(f.SearchTerm)
	matchesSearch := strings.Contains(strings.ToLower(s.Title), term) ||
		strings.Contains(strings.ToLower(s.Description), term)
	matchesCategory := f.Category == "" || s.Category == f.Category
	return matchesStatus && matchesSearch && matchesCategory
}

// FilterSubmissions returns the submissions of list that match f, preserving order.
// The input slice is not modified.
func FilterSubmissions(list []Submission, f Filter) []Submission {
	out := make([]Submission, 0, len(list))
	for _, s := range list {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// CountByStatus returns how many submissions of list have status.
func CountByStatus(list []Submission, status Status) int {
	n := 0
	for _, s := range list {
		if s.Status == status {
			n++
		}
	}
	return n
}
