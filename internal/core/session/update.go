package session

import (
	"time"

	"github.com/example/casebook/internal/core/category"
	"github.com/example/casebook/internal/core/effects"
	"github.com/example/casebook/internal/core/fault"
	"github.com/example/casebook/internal/core/submission"
)

// Notice texts.
const (
	MsgInvalidPassword   = "Invalid password"
	MsgSubmissionCreated = "Submission received! It will be reviewed by administrators."
)

var failureMessages = map[string]string{
	effects.EntitySubmission + "/" + effects.OpCreate:  "Error submitting. Please try again.",
	effects.EntitySubmission + "/" + effects.OpApprove: "Error approving submission.",
	effects.EntitySubmission + "/" + effects.OpReject:  "Error rejecting submission.",
	effects.EntitySubmission + "/" + effects.OpDelete:  "Error deleting submission.",
	effects.EntityCategory + "/" + effects.OpCreate:    "Error adding category.",
	effects.EntityCategory + "/" + effects.OpDelete:    "Error deleting category.",
}

// Init returns the initial state and the concurrent initial fetch of both collections.
func Init() (State, []effects.Effect) {
	s := State{
		View:                ViewBrowse,
		AdminTab:            TabPending,
		Loading:             true,
		InitialLoadsPending: 2,
		Submissions:         []submission.Submission{},
		Categories:          []string{},
	}
	return s, []effects.Effect{
		effects.QueryEffect{Collection: effects.CollectionSubmissions},
		effects.QueryEffect{Collection: effects.CollectionCategories},
	}
}

// Update applies msg to s and returns the next state with the effects to run.
// now is the clock used to date new submissions.
func Update(s State, msg Msg, now time.Time) (State, []effects.Effect) {
	switch m := msg.(type) {
	case SubmissionsLoaded:
		return onSubmissionsLoaded(s, m)
	case CategoriesLoaded:
		return onCategoriesLoaded(s, m)
	case PersistDone:
		return onPersistDone(s, m)
	}

	// While the initial fetch is in flight only the gate can be requested.
	if s.Loading {
		if _, ok := msg.(OpenAdminGate); ok {
			s.ShowAdminGate = true
		}
		return s, nil
	}

	s.Notice = Notice{}

	if s.ShowAdminGate {
		return updateGate(s, msg)
	}
	if s.IsAdmin {
		return updateAdmin(s, msg)
	}
	return updatePublic(s, msg, now)
}

func updateGate(s State, msg Msg) (State, []effects.Effect) {
	switch m := msg.(type) {
	case EditGatePassword:
		s.AdminGatePassword = m.Value
	case Login:
		if err := Authorize(m.Password); err != nil {
			s.AdminGatePassword = m.Password
			s.Notice = Notice{Level: NoticeError, Kind: fault.InvalidCredential, Message: MsgInvalidPassword}
			return s, []effects.Effect{logWarn("admin login rejected")}
		}
		s.IsAdmin = true
		s.ShowAdminGate = false
		s.AdminGatePassword = ""
	case CancelAdminGate:
		s.ShowAdminGate = false
		s.AdminGatePassword = ""
	}
	return s, nil
}

func updatePublic(s State, msg Msg, now time.Time) (State, []effects.Effect) {
	switch m := msg.(type) {
	case OpenAdminGate:
		s.ShowAdminGate = true
	case Navigate:
		if m.View == ViewBrowse || m.View == ViewSubmit {
			s.View = m.View
		}
	case EditSearchTerm:
		s.SearchTerm = m.Value
	case SelectCategoryFilter:
		s.SelectedCategory = m.Name
	case EditDraft:
		s.Draft = setDraftField(s.Draft, m.Field, m.Value)
	case SubmitDraft:
		if s.View != ViewSubmit {
			return s, nil
		}
		if r := submission.ValidateDraft(s.Draft); !r.Allowed {
			s.Notice = Notice{Level: NoticeError, Kind: fault.Validation, Message: r.Reason}
			return s, []effects.Effect{logWarn("submission rejected: " + r.Reason)}
		}
		f := submission.NewSubmissionFields(s.Draft, now)
		return s, []effects.Effect{effects.PersistEffect{
			Entity:    effects.EntitySubmission,
			Operation: effects.OpCreate,
			Data: effects.CreateSubmissionData{
				Title:         f.Title,
				Description:   f.Description,
				UseCase:       f.UseCase,
				SubmittedBy:   f.SubmittedBy,
				Status:        string(f.Status),
				Category:      f.Category,
				Tags:          f.Tags,
				SubmittedDate: f.SubmittedDate,
			},
		}}
	}
	return s, nil
}

func updateAdmin(s State, msg Msg) (State, []effects.Effect) {
	// A pending confirmation blocks everything but its answer.
	if s.PendingDeleteID != "" {
		m, ok := msg.(ConfirmDelete)
		if !ok {
			return s, nil
		}
		id := s.PendingDeleteID
		s.PendingDeleteID = ""
		if !m.Confirmed {
			return s, nil
		}
		return s, []effects.Effect{persistSubmission(effects.OpDelete, id)}
	}

	switch m := msg.(type) {
	case OpenAdminGate:
		s.ShowAdminGate = true
	case Logout:
		s.IsAdmin = false
		s.View = ViewBrowse
	case SelectAdminTab:
		switch m.Tab {
		case TabPending, TabApproved, TabCategories:
			s.AdminTab = m.Tab
		}
	case EditSearchTerm:
		s.SearchTerm = m.Value
	case SelectCategoryFilter:
		s.SelectedCategory = m.Name
	case ChooseReviewCategory:
		s.CategoryUnderReview = m.Name
	case EditNewCategory:
		s.NewCategoryName = m.Value
	case Approve:
		if r := submission.ValidateCategoryChoice(m.Category); !r.Allowed {
			s.Notice = Notice{Level: NoticeError, Kind: fault.Validation, Message: r.Reason}
			return s, []effects.Effect{logWarn("approval of " + m.ID + " rejected: " + r.Reason)}
		}
		return s, []effects.Effect{effects.PersistEffect{
			Entity:    effects.EntitySubmission,
			Operation: effects.OpApprove,
			Data:      effects.ApproveData{ID: m.ID, Category: m.Category},
		}}
	case Reject:
		// Ids missing from the snapshot are left to the store to report.
		if sub, ok := s.FindSubmission(m.ID); ok {
			r := submission.CanReject(submission.RejectContext{SubmissionID: m.ID, Status: sub.Status})
			if !r.Allowed {
				s.Notice = Notice{Level: NoticeError, Kind: fault.Validation, Message: r.Reason}
				return s, []effects.Effect{logWarn("rejection of " + m.ID + " refused: " + r.Reason)}
			}
		}
		return s, []effects.Effect{persistSubmission(effects.OpReject, m.ID)}
	case RequestDelete:
		s.PendingDeleteID = m.ID
	case AddCategory:
		r := category.CanAddCategory(category.AddCategoryContext{Name: m.Name, Existing: s.Categories})
		if !r.Allowed {
			return s, nil
		}
		return s, []effects.Effect{effects.PersistEffect{
			Entity:    effects.EntityCategory,
			Operation: effects.OpCreate,
			Data:      effects.CategoryRef{Name: category.NormalizeName(m.Name)},
		}}
	case DeleteCategory:
		return s, []effects.Effect{effects.PersistEffect{
			Entity:    effects.EntityCategory,
			Operation: effects.OpDelete,
			Data:      effects.CategoryRef{Name: m.Name},
		}}
	}
	return s, nil
}

func onSubmissionsLoaded(s State, m SubmissionsLoaded) (State, []effects.Effect) {
	var effs []effects.Effect
	if m.Err != nil {
		s.Notice = storeNotice("Error loading submissions.")
		effs = append(effs, logError("failed to load submissions", m.Err))
	} else {
		s.Submissions = append([]submission.Submission{}, m.Submissions...)
	}
	return settleInitialLoad(s), effs
}

func onCategoriesLoaded(s State, m CategoriesLoaded) (State, []effects.Effect) {
	var effs []effects.Effect
	if m.Err != nil {
		s.Notice = storeNotice("Error loading categories.")
		effs = append(effs, logError("failed to load categories", m.Err))
	} else {
		s.Categories = append([]string{}, m.Names...)
	}
	return settleInitialLoad(s), effs
}

func settleInitialLoad(s State) State {
	if s.InitialLoadsPending > 0 {
		s.InitialLoadsPending--
		s.Loading = s.InitialLoadsPending > 0
	}
	return s
}

// onPersistDone resynchronizes the affected collection exactly once,
// whether the mutation succeeded or failed.
func onPersistDone(s State, m PersistDone) (State, []effects.Effect) {
	reload := effects.QueryEffect{Collection: m.Effect.Collection()}
	key := m.Effect.Entity + "/" + m.Effect.Operation

	if m.Err != nil {
		msg := failureMessages[key]
		kind := fault.KindOf(m.Err)
		if kind == fault.Validation || msg == "" {
			msg = m.Err.Error()
		}
		s.Notice = Notice{Level: NoticeError, Kind: kind, Message: msg}
		if kind == fault.Unknown {
			s.Notice.Kind = fault.Store
		}
		return s, []effects.Effect{logError("failed to "+m.Effect.Operation+" "+m.Effect.Entity, m.Err), reload}
	}

	switch key {
	case effects.EntitySubmission + "/" + effects.OpCreate:
		s.Draft = submission.Draft{}
		s.View = ViewBrowse
		s.Notice = Notice{Level: NoticeInfo, Message: MsgSubmissionCreated}
	case effects.EntitySubmission + "/" + effects.OpApprove:
		s.CategoryUnderReview = ""
	case effects.EntityCategory + "/" + effects.OpCreate:
		s.NewCategoryName = ""
	}
	return s, []effects.Effect{reload}
}

func setDraftField(d submission.Draft, field DraftField, value string) submission.Draft {
	switch field {
	case FieldTitle:
		d.Title = value
	case FieldDescription:
		d.Description = value
	case FieldUseCase:
		d.UseCase = value
	case FieldSubmittedBy:
		d.SubmittedBy = value
	}
	return d
}

func persistSubmission(op, id string) effects.PersistEffect {
	return effects.PersistEffect{
		Entity:    effects.EntitySubmission,
		Operation: op,
		Data:      effects.SubmissionRef{ID: id},
	}
}

func storeNotice(message string) Notice {
	return Notice{Level: NoticeError, Kind: fault.Store, Message: message}
}

func logWarn(message string) effects.LogEffect {
	return effects.LogEffect{Level: "warn", Message: message}
}

func logError(message string, err error) effects.LogEffect {
	return effects.LogEffect{Level: "error", Message: message, Fields: map[string]any{"error": err.Error()}}
}
