package submission

import (
	"fmt"
	"strings"

	"github.com/example/casebook/internal/core/fault"
)

// Notice texts shown to the user when a guard refuses an operation.
const (
	ReasonMissingFields   = "Please fill out all fields"
	ReasonMissingCategory = "Please select a category"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to a validation error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fault.Validationf("%s", r.Reason)
}

// MissingFields returns the names of the draft fields that are blank after trimming,
// in a fixed order.
func MissingFields(d Draft) []string {
	d = d.Trimmed()
	var missing []string
	if d.Title == "" {
		missing = append(missing, "title")
	}
	if d.Description == "" {
		missing = append(missing, "description")
	}
	if d.UseCase == "" {
		missing = append(missing, "useCase")
	}
	if d.SubmittedBy == "" {
		missing = append(missing, "submittedBy")
	}
	return missing
}

// ValidateDraft evaluates whether a draft can be submitted.
// Rules:
// - title, description, useCase and submittedBy must all be non-empty after trimming
func ValidateDraft(d Draft) GuardResult {
	if len(MissingFields(d)) > 0 {
		return GuardResult{Allowed: false, Reason: ReasonMissingFields}
	}
	return GuardResult{Allowed: true}
}

// ValidateCategoryChoice evaluates the category picked for an approval.
// Only emptiness is checked: the live category set is not consulted.
func ValidateCategoryChoice(category string) GuardResult {
	if strings.TrimSpace(category) == "" {
		return GuardResult{Allowed: false, Reason: ReasonMissingCategory}
	}
	return GuardResult{Allowed: true}
}

// ApproveContext provides context for approval guards.
type ApproveContext struct {
	SubmissionID string
	Status       Status
	Category     string
}

// CanApprove evaluates whether a submission can be approved.
// Rules:
// - a category must be chosen
// - the submission must still be pending (category is set exactly once)
func CanApprove(ctx ApproveContext) GuardResult {
	if r := ValidateCategoryChoice(ctx.Category); !r.Allowed {
		return r
	}

	if ctx.Status != StatusPending {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("can only approve pending submissions (%s is %s)", ctx.SubmissionID, ctx.Status),
		}
	}

	return GuardResult{Allowed: true}
}

// RejectContext provides context for rejection guards.
type RejectContext struct {
	SubmissionID string
	Status       Status
}

// CanReject evaluates whether a submission can be rejected.
// Rules:
// - the submission must still be pending; approved items go through confirmed deletion
func CanReject(ctx RejectContext) GuardResult {
	if ctx.Status != StatusPending {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("can only reject pending submissions (%s is %s)", ctx.SubmissionID, ctx.Status),
		}
	}
	return GuardResult{Allowed: true}
}
