package app

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/casebook/internal/core/effects"
	"github.com/example/casebook/internal/core/fault"
	"github.com/example/casebook/internal/core/session"
	"github.com/example/casebook/internal/core/submission"
	"github.com/example/casebook/internal/ports/secondary"
)

func fillDraft(d submission.Draft) []session.Msg {
	return []session.Msg{
		session.EditDraft{Field: session.FieldTitle, Value: d.Title},
		session.EditDraft{Field: session.FieldDescription, Value: d.Description},
		session.EditDraft{Field: session.FieldUseCase, Value: d.UseCase},
		session.EditDraft{Field: session.FieldSubmittedBy, Value: d.SubmittedBy},
	}
}

func login(ctx context.Context, c *Controller) session.State {
	return c.Dispatch(ctx, session.OpenAdminGate{}, session.Login{Password: session.AdminSecret})
}

// ============================================================================
// Start Tests
// ============================================================================

func TestController_StartLoadsBothCollections(t *testing.T) {
	rig := newTestRig("Litigation", "Research")
	rig.submissionRepo.seed(secondary.SubmissionRecord{ID: "S-1", Title: "Docket Watch", Status: "approved", Category: "Litigation"})

	state := rig.controller.Start(context.Background())

	if state.Loading {
		t.Error("expected loading to settle after the initial fetch")
	}
	if state.Mode() != session.ModeBrowse {
		t.Errorf("Mode() = %q, want %q", state.Mode(), session.ModeBrowse)
	}
	if diff := cmp.Diff([]string{"Litigation", "Research"}, state.Categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	if len(state.Submissions) != 1 {
		t.Errorf("expected 1 submission, got %d", len(state.Submissions))
	}
	if rig.submissionRepo.listCalls != 1 || rig.categoryRepo.listCalls != 1 {
		t.Errorf("expected one fetch per collection, got %d/%d", rig.submissionRepo.listCalls, rig.categoryRepo.listCalls)
	}
}

func TestController_StartWithStoreFailure(t *testing.T) {
	rig := newTestRig()
	rig.submissionRepo.listErr = errors.New("offline")

	state := rig.controller.Start(context.Background())

	if state.Loading {
		t.Error("a failed fetch must still settle loading")
	}
	if state.Notice.Kind != fault.Store {
		t.Errorf("Notice.Kind = %q, want %q", state.Notice.Kind, fault.Store)
	}
	if len(state.Submissions) != 0 {
		t.Errorf("expected empty submissions, got %d", len(state.Submissions))
	}
}

// ============================================================================
// Submission Lifecycle Tests
// ============================================================================

func TestController_SubmitLandsInPendingOnly(t *testing.T) {
	rig := newTestRig("Litigation")
	ctx := context.Background()
	rig.controller.Start(ctx)

	msgs := append([]session.Msg{session.Navigate{View: session.ViewSubmit}}, fillDraft(contractReview())...)
	msgs = append(msgs, session.SubmitDraft{})
	state := rig.controller.Dispatch(ctx, msgs...)

	if state.View != session.ViewBrowse {
		t.Errorf("View = %q, want browse after submitting", state.View)
	}
	if !state.Draft.IsZero() {
		t.Errorf("expected draft to be reset, got %+v", state.Draft)
	}
	if state.Notice.Message != session.MsgSubmissionCreated {
		t.Errorf("Notice = %q, want %q", state.Notice.Message, session.MsgSubmissionCreated)
	}
	if got := state.ApprovedSubmissions(); len(got) != 0 {
		t.Errorf("a pending submission must not be browsable, got %+v", got)
	}

	pending := state.PendingSubmissions()
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending submission, got %d", len(pending))
	}
	got := pending[0]
	if got.Title != "Contract Review" || got.Category != "" || got.SubmittedDate != "2026-10-19" || len(got.Tags) != 0 {
		t.Errorf("unexpected created submission: %+v", got)
	}
}

func TestController_SubmitStoreFailureKeepsDraft(t *testing.T) {
	rig := newTestRig()
	ctx := context.Background()
	rig.controller.Start(ctx)
	rig.submissionRepo.createErr = errors.New("quota exceeded")

	msgs := append([]session.Msg{session.Navigate{View: session.ViewSubmit}}, fillDraft(contractReview())...)
	msgs = append(msgs, session.SubmitDraft{})
	state := rig.controller.Dispatch(ctx, msgs...)

	if state.View != session.ViewSubmit {
		t.Errorf("View = %q, want submit", state.View)
	}
	if diff := cmp.Diff(contractReview(), state.Draft); diff != "" {
		t.Errorf("draft must survive a store failure (-want +got):\n%s", diff)
	}
	if state.Notice.Message != "Error submitting. Please try again." {
		t.Errorf("Notice = %q", state.Notice.Message)
	}
}

func TestController_SubmitIncompleteDraft(t *testing.T) {
	rig := newTestRig()
	ctx := context.Background()
	rig.controller.Start(ctx)

	draft := contractReview()
	draft.Description = ""
	msgs := append([]session.Msg{session.Navigate{View: session.ViewSubmit}}, fillDraft(draft)...)
	msgs = append(msgs, session.SubmitDraft{})
	before := rig.submissionRepo.listCalls
	state := rig.controller.Dispatch(ctx, msgs...)

	if state.Notice.Message != submission.ReasonMissingFields {
		t.Errorf("Notice = %q, want %q", state.Notice.Message, submission.ReasonMissingFields)
	}
	if len(rig.submissionRepo.records) != 0 {
		t.Error("nothing must be stored")
	}
	if rig.submissionRepo.listCalls != before {
		t.Error("a refused submission must not trigger a reload")
	}
}

func TestController_ApproveMovesToBrowse(t *testing.T) {
	rig := newTestRig("Litigation")
	ctx := context.Background()
	rig.submissionRepo.seed(secondary.SubmissionRecord{ID: "S-1", Title: "Contract Review", Status: "pending", SubmittedDate: "2026-10-19"})
	rig.controller.Start(ctx)
	login(ctx, rig.controller)

	before := rig.submissionRepo.listCalls
	state := rig.controller.Dispatch(ctx,
		session.ChooseReviewCategory{Name: "Litigation"},
		session.Approve{ID: "S-1", Category: "Litigation"},
	)

	if rig.submissionRepo.listCalls != before+1 {
		t.Errorf("expected exactly one reload, got %d", rig.submissionRepo.listCalls-before)
	}
	if state.CategoryUnderReview != "" {
		t.Errorf("CategoryUnderReview = %q, want cleared", state.CategoryUnderReview)
	}
	approved := state.ApprovedSubmissions()
	if len(approved) != 1 || approved[0].Category != "Litigation" {
		t.Fatalf("expected S-1 approved under Litigation, got %+v", approved)
	}
	if len(state.PendingSubmissions()) != 0 {
		t.Error("expected no pending submissions")
	}

	state = rig.controller.Dispatch(ctx, session.Logout{})
	if state.Mode() != session.ModeBrowse || len(state.ApprovedSubmissions()) != 1 {
		t.Errorf("approved submission must be browsable after logout, mode=%q", state.Mode())
	}
}

func TestController_ApproveWithoutCategory(t *testing.T) {
	rig := newTestRig("Litigation")
	ctx := context.Background()
	rig.submissionRepo.seed(secondary.SubmissionRecord{ID: "S-1", Title: "Contract Review", Status: "pending"})
	rig.controller.Start(ctx)
	login(ctx, rig.controller)

	before := rig.submissionRepo.listCalls
	state := rig.controller.Dispatch(ctx, session.Approve{ID: "S-1", Category: ""})

	if state.Notice.Kind != fault.Validation || state.Notice.Message != submission.ReasonMissingCategory {
		t.Errorf("Notice = %+v", state.Notice)
	}
	if rig.submissionRepo.records["S-1"].Status != "pending" {
		t.Error("submission must stay pending")
	}
	if rig.submissionRepo.listCalls != before {
		t.Error("a refused approval must not reach the store")
	}
}

func TestController_RejectReloadsOnce(t *testing.T) {
	rig := newTestRig()
	ctx := context.Background()
	rig.submissionRepo.seed(secondary.SubmissionRecord{ID: "S-1", Status: "pending"})
	rig.controller.Start(ctx)
	login(ctx, rig.controller)

	before := rig.submissionRepo.listCalls
	state := rig.controller.Dispatch(ctx, session.Reject{ID: "S-1"})

	if rig.submissionRepo.listCalls != before+1 {
		t.Errorf("expected exactly one reload, got %d", rig.submissionRepo.listCalls-before)
	}
	if len(state.Submissions) != 0 {
		t.Errorf("expected rejected submission gone, got %+v", state.Submissions)
	}
}

func TestController_DeleteNeedsConfirmation(t *testing.T) {
	rig := newTestRig("Litigation")
	ctx := context.Background()
	rig.submissionRepo.seed(secondary.SubmissionRecord{ID: "S-1", Status: "approved", Category: "Litigation"})
	rig.controller.Start(ctx)
	login(ctx, rig.controller)

	state := rig.controller.Dispatch(ctx, session.RequestDelete{ID: "S-1"}, session.ConfirmDelete{Confirmed: false})
	if len(state.Submissions) != 1 || state.PendingDeleteID != "" {
		t.Fatalf("declined delete must keep the submission, state=%+v", state)
	}

	state = rig.controller.Dispatch(ctx, session.RequestDelete{ID: "S-1"}, session.ConfirmDelete{Confirmed: true})
	if len(state.Submissions) != 0 {
		t.Errorf("confirmed delete must remove the submission, got %+v", state.Submissions)
	}
}

func TestController_MutationFailureStillReloads(t *testing.T) {
	rig := newTestRig()
	ctx := context.Background()
	rig.submissionRepo.seed(secondary.SubmissionRecord{ID: "S-1", Status: "pending"})
	rig.controller.Start(ctx)
	login(ctx, rig.controller)
	rig.submissionRepo.deleteErr = errors.New("permission denied")

	before := rig.submissionRepo.listCalls
	state := rig.controller.Dispatch(ctx, session.Reject{ID: "S-1"})

	if rig.submissionRepo.listCalls != before+1 {
		t.Errorf("expected exactly one reload, got %d", rig.submissionRepo.listCalls-before)
	}
	if state.Notice.Message != "Error rejecting submission." || state.Notice.Kind != fault.Store {
		t.Errorf("Notice = %+v", state.Notice)
	}
}

// ============================================================================
// Category Tests
// ============================================================================

func TestController_AddCategoryTwice(t *testing.T) {
	rig := newTestRig()
	ctx := context.Background()
	rig.controller.Start(ctx)
	login(ctx, rig.controller)

	state := rig.controller.Dispatch(ctx,
		session.EditNewCategory{Value: "Litigation"},
		session.AddCategory{Name: "Litigation"},
		session.AddCategory{Name: "Litigation"},
	)

	if diff := cmp.Diff([]string{"Litigation"}, state.Categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
	if len(rig.categoryRepo.rows) != 1 {
		t.Errorf("expected one stored row, got %d", len(rig.categoryRepo.rows))
	}
	if state.NewCategoryName != "" {
		t.Errorf("NewCategoryName = %q, want cleared", state.NewCategoryName)
	}
}

func TestController_DeleteCategoryKeepsSubmissionCategory(t *testing.T) {
	rig := newTestRig("Litigation", "Research")
	ctx := context.Background()
	rig.submissionRepo.seed(secondary.SubmissionRecord{ID: "S-1", Status: "approved", Category: "Litigation"})
	rig.controller.Start(ctx)
	login(ctx, rig.controller)

	before := rig.categoryRepo.listCalls
	state := rig.controller.Dispatch(ctx, session.DeleteCategory{Name: "Litigation"})

	if rig.categoryRepo.listCalls != before+1 {
		t.Errorf("expected exactly one category reload, got %d", rig.categoryRepo.listCalls-before)
	}
	if diff := cmp.Diff([]string{"Research"}, state.Categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}

	state = rig.controller.Dispatch(ctx, session.Logout{})
	approved := state.ApprovedSubmissions()
	if len(approved) != 1 || approved[0].Category != "Litigation" {
		t.Errorf("submission must keep its deleted category, got %+v", approved)
	}
}

// ============================================================================
// Gate Tests
// ============================================================================

func TestController_LoginWrongPassword(t *testing.T) {
	rig := newTestRig()
	ctx := context.Background()
	rig.controller.Start(ctx)

	state := rig.controller.Dispatch(ctx, session.OpenAdminGate{}, session.Login{Password: "wrong"})

	if state.IsAdmin {
		t.Error("wrong password must not grant admin")
	}
	if state.Mode() != session.ModeAdminGate {
		t.Errorf("Mode() = %q, want gate to stay open", state.Mode())
	}
	if state.Notice.Message != session.MsgInvalidPassword || state.Notice.Kind != fault.InvalidCredential {
		t.Errorf("Notice = %+v", state.Notice)
	}
}

// ============================================================================
// EffectRunner Tests
// ============================================================================

func TestEffectRunner_LogEffect(t *testing.T) {
	var buf bytes.Buffer
	rig := newTestRig()
	runner := NewEffectRunner(rig.submissions, rig.categories, log.New(&buf, "", 0))

	msgs := runner.Run(context.Background(), effects.LogEffect{
		Level:   "error",
		Message: "failed to reject submission",
		Fields:  map[string]any{"id": "S-1", "error": "boom"},
	})

	if len(msgs) != 0 {
		t.Errorf("log effects complete silently, got %d messages", len(msgs))
	}
	if got := strings.TrimSpace(buf.String()); got != "[error] failed to reject submission error=boom id=S-1" {
		t.Errorf("log line = %q", got)
	}
}

func TestEffectRunner_UnknownPersistData(t *testing.T) {
	rig := newTestRig()
	runner := NewEffectRunner(rig.submissions, rig.categories, log.New(&bytes.Buffer{}, "", 0))

	msgs := runner.Run(context.Background(), effects.PersistEffect{
		Entity:    effects.EntitySubmission,
		Operation: effects.OpCreate,
		Data:      42,
	})

	if len(msgs) != 1 {
		t.Fatalf("expected one completion, got %d", len(msgs))
	}
	done, ok := msgs[0].(session.PersistDone)
	if !ok || done.Err == nil {
		t.Errorf("expected a failed PersistDone, got %#v", msgs[0])
	}
}

// unknownEffect is an effect the runner has no case for.
type unknownEffect struct{}

func (unknownEffect) EffectType() string { return "unknown" }

func TestEffectRunner_UnknownEffect(t *testing.T) {
	rig := newTestRig()
	var buf bytes.Buffer
	runner := NewEffectRunner(rig.submissions, rig.categories, log.New(&buf, "", 0))

	msgs := runner.Run(context.Background(), unknownEffect{})

	if len(msgs) != 0 {
		t.Errorf("expected no messages, got %v", msgs)
	}
	if got := buf.String(); got != "[error] unknown effect type: app.unknownEffect\n" {
		t.Errorf("log = %q", got)
	}
}
