// Package submission contains the pure business logic of the submission lifecycle.
// This is part of the Functional Core - no I/O, only pure functions.
package submission

import (
	"strings"
	"time"
)

// Status represents the possible states of a persisted submission.
// Rejection deletes the record, so there is no rejected status.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// DateLayout is the calendar-date format of SubmittedDate.
const DateLayout = "2006-01-02"

// Submission is a user-proposed AI use case.
type Submission struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	UseCase       string   `json:"useCase"`
	SubmittedBy   string   `json:"submittedBy"`
	Status        Status   `json:"status"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	SubmittedDate string   `json:"submittedDate"`
}

// Consistent reports whether s satisfies the lifecycle invariant:
// a submission is approved exactly when it carries a category.
func Consistent(s Submission) bool {
	return (s.Status == StatusApproved) == (s.Category != "")
}

// Draft is the form buffer of a submission that has not been sent yet.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UseCase     string `json:"useCase"`
	SubmittedBy string `json:"submittedBy"`
}

// Trimmed returns d with surrounding whitespace removed from every field.
func (d Draft) Trimmed() Draft {
	return Draft{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		UseCase:     strings.TrimSpace(d.UseCase),
		SubmittedBy: strings.TrimSpace(d.SubmittedBy),
	}
}

// IsZero reports whether every field of d is empty.
func (d Draft) IsZero() bool {
	return d == Draft{}
}

// Fields are the values a new submission is created with.
type Fields struct {
	Title         string
	Description   string
	UseCase       string
	SubmittedBy   string
	Status        Status
	Category      string
	Tags          []string
	SubmittedDate string
}

// NewSubmissionFields returns the creation values for a validated draft.
// New submissions start pending, uncategorized and untagged, dated today in UTC.
// The caller passes the current time to enable testing.
func NewSubmissionFields(d Draft, now time.Time) Fields {
	d = d.Trimmed()
	return Fields{
		Title:         d.Title,
		Description:   d.Description,
		UseCase:       d.UseCase,
		SubmittedBy:   d.SubmittedBy,
		Status:        InitialStatus(),
		Category:      "",
		Tags:          []string{},
		SubmittedDate: now.UTC().Format(DateLayout),
	}
}

// InitialStatus returns the status of a newly created submission.
func InitialStatus() Status {
	return StatusPending
}

// Approval is the patch applied to a submission when it is approved.
// Status and category change together.
type Approval struct {
	Status   Status
	Category string
}

// ApplyApproval returns the approval patch for category.
func ApplyApproval(category string) Approval {
	return Approval{Status: StatusApproved, Category: category}
}
