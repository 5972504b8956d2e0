// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// SubmissionRepository defines the secondary port for the submissions collection.
type SubmissionRepository interface {
	// List returns every submission. Callers must not rely on a stable order across calls.
	List(ctx context.Context) ([]*SubmissionRecord, error)

	// GetByID retrieves a submission by its ID.
	GetByID(ctx context.Context, id string) (*SubmissionRecord, error)

	// Create persists a new submission and returns the store-assigned ID.
	Create(ctx context.Context, submission *SubmissionRecord) (string, error)

	// Update applies a partial update to a submission.
	Update(ctx context.Context, id string, patch SubmissionPatch) error

	// Delete permanently removes a submission.
	Delete(ctx context.Context, id string) error
}

// SubmissionRecord represents a submission as stored in persistence.
type SubmissionRecord struct {
	ID            string
	Title         string
	Description   string
	UseCase       string
	SubmittedBy   string
	Status        string // pending, approved
	Category      string // Empty string means uncategorized
	Tags          []string
	SubmittedDate string // YYYY-MM-DD
	CreatedAt     string
}

// SubmissionPatch lists the fields to change. Empty strings leave a field untouched.
type SubmissionPatch struct {
	Status   string
	Category string
}

// CategoryRepository defines the secondary port for the categories collection.
type CategoryRepository interface {
	// List returns every category row in store enumeration order.
	List(ctx context.Context) ([]*CategoryRecord, error)

	// Create persists a new category row and returns the store-assigned ID.
	// Names are not unique at the store level.
	Create(ctx context.Context, category *CategoryRecord) (string, error)

	// ListByName returns every row whose name exactly equals name.
	ListByName(ctx context.Context, name string) ([]*CategoryRecord, error)

	// Delete removes one category row.
	Delete(ctx context.Context, id string) error
}

// CategoryRecord represents a category as stored in persistence.
type CategoryRecord struct {
	ID        string
	Name      string
	CreatedAt string
}
