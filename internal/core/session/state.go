// Package session contains the view/session state machine.
// State is plain data and Update is a pure reducer: every transition is a
// function of the previous state and one message, and all I/O is returned as effects.
package session

import (
	"github.com/example/casebook/internal/core/fault"
	"github.com/example/casebook/internal/core/submission"
)

// AdminSecret is the fixed shared password of the admin gate.
// The gate is a mode switch, not an authentication system.
const AdminSecret = "admin123"

// View is the primary screen shown outside admin mode.
type View string

const (
	ViewBrowse View = "browse"
	ViewSubmit View = "submit"
)

// AdminTab is the admin dashboard sub-view.
type AdminTab string

const (
	TabPending    AdminTab = "pending"
	TabApproved   AdminTab = "approved"
	TabCategories AdminTab = "categories"
)

// Mode is the render mode derived from State.
type Mode string

const (
	ModeLoading   Mode = "loading"
	ModeAdminGate Mode = "admin_gate"
	ModeAdmin     Mode = "admin"
	ModeBrowse    Mode = "browse"
	ModeSubmit    Mode = "submit"
)

// NoticeLevel distinguishes confirmations from failures.
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a user-visible message. The zero value means no notice.
type Notice struct {
	Level   NoticeLevel `json:"level,omitempty"`
	Kind    fault.Kind  `json:"kind,omitempty"`
	Message string      `json:"message,omitempty"`
}

// IsZero reports whether n carries no message.
func (n Notice) IsZero() bool { return n.Message == "" }

// Err returns the notice as a classified error, or nil unless it reports a failure.
func (n Notice) Err() error {
	if n.Level != NoticeError || n.IsZero() {
		return nil
	}
	return &fault.Error{Kind: n.Kind, Message: n.Message}
}

// Authorize checks password against the admin secret.
func Authorize(password string) error {
	if password != AdminSecret {
		return fault.Credential(MsgInvalidPassword)
	}
	return nil
}

// State is the complete client-side session state.
type State struct {
	View                View                    `json:"view"`
	IsAdmin             bool                    `json:"isAdmin"`
	AdminGatePassword   string                  `json:"adminGatePassword"`
	ShowAdminGate       bool                    `json:"showAdminGate"`
	Submissions         []submission.Submission `json:"submissions"`
	Categories          []string                `json:"categories"`
	Loading             bool                    `json:"loading"`
	InitialLoadsPending int                     `json:"initialLoadsPending"`
	SearchTerm          string                  `json:"searchTerm"`
	SelectedCategory    string                  `json:"selectedCategory"`
	NewCategoryName     string                  `json:"newCategoryName"`
	CategoryUnderReview string                  `json:"categoryUnderReview"`
	AdminTab            AdminTab                `json:"adminTab"`
	Draft               submission.Draft        `json:"draftSubmission"`
	PendingDeleteID     string                  `json:"pendingDeleteId,omitempty"`
	Notice              Notice                  `json:"notice"`
}

// Mode returns the render mode, evaluated in precedence order:
// loading, admin gate, admin dashboard, then the current view.
func (s State) Mode() Mode {
	switch {
	case s.Loading:
		return ModeLoading
	case s.ShowAdminGate:
		return ModeAdminGate
	case s.IsAdmin:
		return ModeAdmin
	case s.View == ViewSubmit:
		return ModeSubmit
	default:
		return ModeBrowse
	}
}

// filter returns the shared search/category filter for status.
func (s State) filter(status submission.Status) submission.Filter {
	return submission.Filter{
		Status:     status,
		SearchTerm: s.SearchTerm,
		Category:   s.SelectedCategory,
	}
}

// PendingSubmissions returns the pending submissions matching the current filters.
func (s State) PendingSubmissions() []submission.Submission {
	return submission.FilterSubmissions(s.Submissions, s.filter(submission.StatusPending))
}

// ApprovedSubmissions returns the approved submissions matching the current filters.
// This is also the public browse list.
func (s State) ApprovedSubmissions() []submission.Submission {
	return submission.FilterSubmissions(s.Submissions, s.filter(submission.StatusApproved))
}

// FindSubmission returns the submission with id from the local snapshot.
func (s State) FindSubmission(id string) (submission.Submission, bool) {
	for _, sub := range s.Submissions {
		if sub.ID == id {
			return sub, true
		}
	}
	return submission.Submission{}, false
}
