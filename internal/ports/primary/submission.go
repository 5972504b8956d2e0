package primary

import (
	"context"

	"github.com/example/casebook/internal/core/submission"
)

// SubmissionService defines the primary port for the submission lifecycle.
type SubmissionService interface {
	// SubmitUseCase validates a draft and creates a pending submission.
	SubmitUseCase(ctx context.Context, req SubmitUseCaseRequest) (*SubmitUseCaseResponse, error)

	// GetSubmission retrieves a submission by ID.
	GetSubmission(ctx context.Context, submissionID string) (*submission.Submission, error)

	// ListSubmissions reloads the full collection and applies filters.
	ListSubmissions(ctx context.Context, filters SubmissionFilters) ([]submission.Submission, error)

	// ApproveSubmission approves a pending submission under category.
	ApproveSubmission(ctx context.Context, submissionID, category string) error

	// RejectSubmission permanently deletes a submission under review.
	RejectSubmission(ctx context.Context, submissionID string) error

	// DeleteSubmission permanently deletes a submission. Confirmation is the caller's job.
	DeleteSubmission(ctx context.Context, submissionID string) error
}

// SubmitUseCaseRequest contains parameters for submitting a use case.
type SubmitUseCaseRequest struct {
	Draft         submission.Draft
	SubmittedDate string // Optional - defaults to today
}

// SubmitUseCaseResponse contains the result of a submission.
type SubmitUseCaseResponse struct {
	SubmissionID string
	Submission   *submission.Submission
}

// SubmissionFilters contains filter options for listing submissions.
type SubmissionFilters struct {
	Status     string
	SearchTerm string
	Category   string
}
