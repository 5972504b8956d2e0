package session

import (
	"github.com/example/casebook/internal/core/effects"
	"github.com/example/casebook/internal/core/submission"
)

// Msg is an event fed to Update: a user action or the completion of an effect.
type Msg interface {
	sessionMsg()
}

// DraftField names one field of the submission draft.
type DraftField string

const (
	FieldTitle       DraftField = "title"
	FieldDescription DraftField = "description"
	FieldUseCase     DraftField = "useCase"
	FieldSubmittedBy DraftField = "submittedBy"
)

// User actions.
type (
	// Navigate switches the primary view.
	Navigate struct{ View View }
	// OpenAdminGate shows the password prompt.
	OpenAdminGate struct{}
	// EditGatePassword replaces the password buffer.
	EditGatePassword struct{ Value string }
	// Login submits a password to the gate.
	Login struct{ Password string }
	// CancelAdminGate hides the password prompt.
	CancelAdminGate struct{}
	// Logout leaves admin mode.
	Logout struct{}
	// SelectAdminTab switches the admin sub-view.
	SelectAdminTab struct{ Tab AdminTab }
	// EditSearchTerm replaces the search filter.
	EditSearchTerm struct{ Value string }
	// SelectCategoryFilter replaces the category filter; empty matches all.
	SelectCategoryFilter struct{ Name string }
	// EditDraft replaces one draft field.
	EditDraft struct {
		Field DraftField
		Value string
	}
	// SubmitDraft sends the draft as a new submission.
	SubmitDraft struct{}
	// EditNewCategory replaces the category creation buffer.
	EditNewCategory struct{ Value string }
	// ChooseReviewCategory picks the category for the submission under review.
	ChooseReviewCategory struct{ Name string }
	// Approve approves a pending submission under Category.
	Approve struct {
		ID       string
		Category string
	}
	// Reject deletes a pending submission.
	Reject struct{ ID string }
	// RequestDelete asks for confirmation before deleting an approved submission.
	RequestDelete struct{ ID string }
	// ConfirmDelete answers the pending confirmation.
	ConfirmDelete struct{ Confirmed bool }
	// AddCategory creates a category.
	AddCategory struct{ Name string }
	// DeleteCategory deletes every category named Name.
	DeleteCategory struct{ Name string }
	// DismissNotice clears the current notice.
	DismissNotice struct{}
)

// Effect completions.
type (
	// SubmissionsLoaded carries the result of a full submissions reload.
	SubmissionsLoaded struct {
		Submissions []submission.Submission
		Err         error
	}
	// CategoriesLoaded carries the result of a full categories reload.
	CategoriesLoaded struct {
		Names []string
		Err   error
	}
	// PersistDone reports that a mutation settled.
	PersistDone struct {
		Effect effects.PersistEffect
		Err    error
	}
)

func (Navigate) sessionMsg()             {}
func (OpenAdminGate) sessionMsg()        {}
func (EditGatePassword) sessionMsg()     {}
func (Login) sessionMsg()                {}
func (CancelAdminGate) sessionMsg()      {}
func (Logout) sessionMsg()               {}
func (SelectAdminTab) sessionMsg()       {}
func (EditSearchTerm) sessionMsg()       {}
func (SelectCategoryFilter) sessionMsg() {}
func (EditDraft) sessionMsg()            {}
func (SubmitDraft) sessionMsg()          {}
func (EditNewCategory) sessionMsg()      {}
func (ChooseReviewCategory) sessionMsg() {}
func (Approve) sessionMsg()              {}
func (Reject) sessionMsg()               {}
func (RequestDelete) sessionMsg()        {}
func (ConfirmDelete) sessionMsg()        {}
func (AddCategory) sessionMsg()          {}
func (DeleteCategory) sessionMsg()       {}
func (DismissNotice) sessionMsg()        {}
func (SubmissionsLoaded) sessionMsg()    {}
func (CategoriesLoaded) sessionMsg()     {}
func (PersistDone) sessionMsg()          {}
