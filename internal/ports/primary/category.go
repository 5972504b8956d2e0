package primary

import "context"

// CategoryService defines the primary port for category operations.
type CategoryService interface {
	// AddCategory creates a category unless the trimmed name is blank or already present.
	AddCategory(ctx context.Context, name string) (*AddCategoryResponse, error)

	// CreateCategory creates a category row without consulting the current set.
	CreateCategory(ctx context.Context, name string) error

	// ListCategories returns the category names in store order.
	ListCategories(ctx context.Context) ([]string, error)

	// DeleteCategory deletes every category row named name and returns how many were removed.
	DeleteCategory(ctx context.Context, name string) (int, error)
}

// AddCategoryResponse contains the result of adding a category.
type AddCategoryResponse struct {
	Name    string
	Created bool // false when the request was a no-op
}
