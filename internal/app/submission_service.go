package app

import (
	"context"
	"log"
	"time"

	"github.com/example/casebook/internal/core/fault"
	"github.com/example/casebook/internal/ctxutil"
	"github.com/example/casebook/internal/core/submission"
	"github.com/example/casebook/internal/ports/primary"
	"github.com/example/casebook/internal/ports/secondary"
)

// SubmissionServiceImpl implements the SubmissionService interface.
type SubmissionServiceImpl struct {
	submissionRepo secondary.SubmissionRepository
	now            func() time.Time
}

// NewSubmissionService creates a new SubmissionService with injected dependencies.
func NewSubmissionService(submissionRepo secondary.SubmissionRepository) *SubmissionServiceImpl {
	return &SubmissionServiceImpl{
		submissionRepo: submissionRepo,
		now:            time.Now,
	}
}

// SubmitUseCase validates a draft and creates a pending submission.
func (s *SubmissionServiceImpl) SubmitUseCase(ctx context.Context, req primary.SubmitUseCaseRequest) (*primary.SubmitUseCaseResponse, error) {
	if err := submission.ValidateDraft(req.Draft).Error(); err != nil {
		return nil, err
	}

	fields := submission.NewSubmissionFields(req.Draft, s.now())
	if req.SubmittedDate != "" {
		fields.SubmittedDate = req.SubmittedDate
	}

	record := &secondary.SubmissionRecord{
		Title:         fields.Title,
		Description:   fields.Description,
		UseCase:       fields.UseCase,
		SubmittedBy:   fields.SubmittedBy,
		Status:        string(fields.Status),
		Category:      fields.Category,
		Tags:          fields.Tags,
		SubmittedDate: fields.SubmittedDate,
	}

	id, err := s.submissionRepo.Create(ctx, record)
	if err != nil {
		return nil, fault.StoreErr("failed to create submission", err)
	}
	record.ID = id

	created := recordToSubmission(record)
	return &primary.SubmitUseCaseResponse{
		SubmissionID: id,
		Submission:   &created,
	}, nil
}

// GetSubmission retrieves a submission by ID.
func (s *SubmissionServiceImpl) GetSubmission(ctx context.Context, submissionID string) (*submission.Submission, error) {
	record, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, fault.StoreErr("failed to get submission", err)
	}
	sub := recordToSubmission(record)
	return &sub, nil
}

// ListSubmissions reloads the full collection and applies filters.
func (s *SubmissionServiceImpl) ListSubmissions(ctx context.Context, filters primary.SubmissionFilters) ([]submission.Submission, error) {
	records, err := s.submissionRepo.List(ctx)
	if err != nil {
		return nil, fault.StoreErr("failed to list submissions", err)
	}

	all := make([]submission.Submission, len(records))
	for i, r := range records {
		all[i] = recordToSubmission(r)
	}

	return submission.FilterSubmissions(all, submission.Filter{
		Status:     submission.Status(filters.Status),
		SearchTerm: filters.SearchTerm,
		Category:   filters.Category,
	}), nil
}

// ApproveSubmission approves a pending submission under category.
// The category is not checked against the live category set.
func (s *SubmissionServiceImpl) ApproveSubmission(ctx context.Context, submissionID, category string) error {
	if err := submission.ValidateCategoryChoice(category).Error(); err != nil {
		return err
	}

	record, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return fault.StoreErr("failed to get submission", err)
	}

	guard := submission.CanApprove(submission.ApproveContext{
		SubmissionID: submissionID,
		Status:       submission.Status(record.Status),
		Category:     category,
	})
	if err := guard.Error(); err != nil {
		return err
	}

	patch := submission.ApplyApproval(category)
	err = s.submissionRepo.Update(ctx, submissionID, secondary.SubmissionPatch{
		Status:   string(patch.Status),
		Category: patch.Category,
	})
	if err != nil {
		return fault.StoreErr("failed to approve submission", err)
	}
	log.Printf("%s approved submission %s under %s", ctxutil.ActorFromContext(ctx), submissionID, category)
	return nil
}

// RejectSubmission permanently deletes a submission under review.
// Approved submissions are refused; they are removed with DeleteSubmission.
func (s *SubmissionServiceImpl) RejectSubmission(ctx context.Context, submissionID string) error {
	record, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return fault.StoreErr("failed to get submission", err)
	}

	guard := submission.CanReject(submission.RejectContext{
		SubmissionID: submissionID,
		Status:       submission.Status(record.Status),
	})
	if err := guard.Error(); err != nil {
		return err
	}

	if err := s.submissionRepo.Delete(ctx, submissionID); err != nil {
		return fault.StoreErr("failed to reject submission", err)
	}
	log.Printf("%s rejected submission %s", ctxutil.ActorFromContext(ctx), submissionID)
	return nil
}

// DeleteSubmission permanently deletes a submission.
func (s *SubmissionServiceImpl) DeleteSubmission(ctx context.Context, submissionID string) error {
	if err := s.submissionRepo.Delete(ctx, submissionID); err != nil {
		return fault.StoreErr("failed to delete submission", err)
	}
	log.Printf("%s deleted submission %s", ctxutil.ActorFromContext(ctx), submissionID)
	return nil
}

// Helper methods

func recordToSubmission(r *secondary.SubmissionRecord) submission.Submission {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return submission.Submission{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		UseCase:       r.UseCase,
		SubmittedBy:   r.SubmittedBy,
		Status:        submission.Status(r.Status),
		Category:      r.Category,
		Tags:          tags,
		SubmittedDate: r.SubmittedDate,
	}
}

// Ensure SubmissionServiceImpl implements the interface
var _ primary.SubmissionService = (*SubmissionServiceImpl)(nil)
