package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/example/casebook/internal/core/session"
	"github.com/example/casebook/internal/core/submission"
)

// SubmissionAdapter translates CLI operations on submissions into session messages
// and renders the settled state.
type SubmissionAdapter struct {
	session Session
	out     io.Writer
}

// NewSubmissionAdapter creates a new SubmissionAdapter.
func NewSubmissionAdapter(s Session, out io.Writer) *SubmissionAdapter {
	return &SubmissionAdapter{
		session: s,
		out:     out,
	}
}

// Login opens the admin gate and submits password.
func (a *SubmissionAdapter) Login(ctx context.Context, password string) error {
	state := a.session.Dispatch(ctx, session.OpenAdminGate{}, session.Login{Password: password})
	if err := state.Notice.Err(); err != nil {
		a.session.Dispatch(ctx, session.CancelAdminGate{})
		return err
	}
	return nil
}

// Browse lists approved submissions matching search and category.
func (a *SubmissionAdapter) Browse(ctx context.Context, search, category string) ([]submission.Submission, error) {
	state := a.applyFilters(ctx, search, category)
	if err := state.Notice.Err(); err != nil {
		return nil, err
	}

	list := state.ApprovedSubmissions()
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No use cases found.")
		if len(state.Submissions) == 0 {
			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, "Share the first one:")
			fmt.Fprintln(a.out, `  casebook submit --title "..." --description "..." --use-case "..." --by "..."`)
		}
		return list, nil
	}

	for _, s := range list {
		fmt.Fprintf(a.out, "\n%s  [%s]\n", s.Title, s.Category)
		fmt.Fprintf(a.out, "  %s\n", s.Description)
		fmt.Fprintf(a.out, "  Use case: %s\n", s.UseCase)
		fmt.Fprintf(a.out, "  Submitted by %s on %s\n", s.SubmittedBy, s.SubmittedDate)
		if len(s.Tags) > 0 {
			fmt.Fprintf(a.out, "  Tags: %s\n", strings.Join(s.Tags, ", "))
		}
	}
	fmt.Fprintln(a.out)

	return list, nil
}

// Submit sends draft as a new pending submission.
func (a *SubmissionAdapter) Submit(ctx context.Context, draft submission.Draft) error {
	state := a.session.Dispatch(ctx,
		session.Navigate{View: session.ViewSubmit},
		session.EditDraft{Field: session.FieldTitle, Value: draft.Title},
		session.EditDraft{Field: session.FieldDescription, Value: draft.Description},
		session.EditDraft{Field: session.FieldUseCase, Value: draft.UseCase},
		session.EditDraft{Field: session.FieldSubmittedBy, Value: draft.SubmittedBy},
		session.SubmitDraft{},
	)
	if err := state.Notice.Err(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s %s\n", checkMark(), state.Notice.Message)
	return nil
}

// Pending lists the submissions awaiting review. Requires admin mode.
func (a *SubmissionAdapter) Pending(ctx context.Context, search, category string) ([]submission.Submission, error) {
	if err := requireAdmin(a.session); err != nil {
		return nil, err
	}
	state := a.applyFilters(ctx, search, category)
	if err := state.Notice.Err(); err != nil {
		return nil, err
	}
	list := state.PendingSubmissions()
	a.printTable(list, fmt.Sprintf("Pending review (%d)", submission.CountByStatus(state.Submissions, submission.StatusPending)))
	return list, nil
}

// Approved lists approved submissions. Requires admin mode.
func (a *SubmissionAdapter) Approved(ctx context.Context, search, category string) ([]submission.Submission, error) {
	if err := requireAdmin(a.session); err != nil {
		return nil, err
	}
	state := a.applyFilters(ctx, search, category)
	if err := state.Notice.Err(); err != nil {
		return nil, err
	}
	list := state.ApprovedSubmissions()
	a.printTable(list, fmt.Sprintf("Approved (%d)", submission.CountByStatus(state.Submissions, submission.StatusApproved)))
	return list, nil
}

// Approve approves a pending submission under category.
func (a *SubmissionAdapter) Approve(ctx context.Context, id, category string) error {
	sub, err := a.find(id)
	if err != nil {
		return err
	}

	state := a.session.Dispatch(ctx,
		session.ChooseReviewCategory{Name: category},
		session.Approve{ID: id, Category: category},
	)
	if err := state.Notice.Err(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s Approved %q under %s\n", checkMark(), sub.Title, category)
	return nil
}

// Reject permanently deletes a submission under review.
func (a *SubmissionAdapter) Reject(ctx context.Context, id string) error {
	sub, err := a.find(id)
	if err != nil {
		return err
	}

	state := a.session.Dispatch(ctx, session.Reject{ID: id})
	if err := state.Notice.Err(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s Rejected %q\n", checkMark(), sub.Title)
	return nil
}

// Delete requests deletion of a submission and answers the confirmation with confirmed.
// The returned submission is the one that was addressed.
func (a *SubmissionAdapter) Delete(ctx context.Context, id string, confirmed bool) (*submission.Submission, error) {
	sub, err := a.find(id)
	if err != nil {
		return nil, err
	}

	state := a.session.Dispatch(ctx,
		session.RequestDelete{ID: id},
		session.ConfirmDelete{Confirmed: confirmed},
	)
	if err := state.Notice.Err(); err != nil {
		return nil, err
	}

	if !confirmed {
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return &sub, nil
	}
	fmt.Fprintf(a.out, "%s Deleted %q\n", checkMark(), sub.Title)
	return &sub, nil
}

// Find returns a submission from the current snapshot.
func (a *SubmissionAdapter) Find(id string) (*submission.Submission, error) {
	sub, err := a.find(id)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (a *SubmissionAdapter) find(id string) (submission.Submission, error) {
	if err := requireAdmin(a.session); err != nil {
		return submission.Submission{}, err
	}
	sub, ok := a.session.State().FindSubmission(id)
	if !ok {
		return submission.Submission{}, fmt.Errorf("submission %s not found", id)
	}
	return sub, nil
}

func (a *SubmissionAdapter) applyFilters(ctx context.Context, search, category string) session.State {
	return a.session.Dispatch(ctx,
		session.EditSearchTerm{Value: search},
		session.SelectCategoryFilter{Name: category},
	)
}

func (a *SubmissionAdapter) printTable(list []submission.Submission, heading string) {
	fmt.Fprintln(a.out, heading)
	if len(list) == 0 {
		fmt.Fprintln(a.out, "  (none)")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tBY\tDATE\tSTATUS\tCATEGORY")
	fmt.Fprintln(w, "--\t-----\t--\t----\t------\t--------")
	for _, s := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			s.Title,
			s.SubmittedBy,
			s.SubmittedDate,
			statusLabel(s.Status),
			s.Category,
		)
	}
	w.Flush()
}
