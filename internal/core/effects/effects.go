// Package effects defines effect types as data structures representing I/O operations.
// This is the foundation of the Functional Core / Imperative Shell pattern.
// Effects are pure data - they describe what should happen, not how.
package effects

// Effect is the base interface for all effects.
// Effects represent I/O operations as data that can be interpreted by the shell.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// Store collections.
const (
	CollectionSubmissions = "submissions"
	CollectionCategories  = "categories"
)

// Persisted entities.
const (
	EntitySubmission = "submission"
	EntityCategory   = "category"
)

// Persist operations.
const (
	OpCreate  = "create"
	OpApprove = "approve"
	OpReject  = "reject"
	OpDelete  = "delete"
)

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// PersistEffect represents a store mutation.
// Data holds one of CreateSubmissionData, ApproveData, SubmissionRef or CategoryRef.
type PersistEffect struct {
	Entity    string // EntitySubmission or EntityCategory
	Operation string // OpCreate, OpApprove, OpReject, OpDelete
	Data      any
}

func (e PersistEffect) EffectType() string { return "persist" }

// Collection returns the collection that must be reloaded once the mutation settles.
func (e PersistEffect) Collection() string {
	if e.Entity == EntityCategory {
		return CollectionCategories
	}
	return CollectionSubmissions
}

// QueryEffect represents a full reload of one collection.
type QueryEffect struct {
	Collection string
}

func (e QueryEffect) EffectType() string { return "query" }

// CreateSubmissionData carries the creation values of a submission.
type CreateSubmissionData struct {
	Title         string
	Description   string
	UseCase       string
	SubmittedBy   string
	Status        string
	Category      string
	Tags          []string
	SubmittedDate string
}

// ApproveData carries an approval patch.
type ApproveData struct {
	ID       string
	Category string
}

// SubmissionRef addresses a submission for reject/delete.
type SubmissionRef struct {
	ID string
}

// CategoryRef addresses categories by name for create/delete.
type CategoryRef struct {
	Name string
}
