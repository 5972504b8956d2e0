package app

import (
	"context"

	"github.com/example/casebook/internal/core/category"
	"github.com/example/casebook/internal/core/fault"
	"github.com/example/casebook/internal/ports/primary"
	"github.com/example/casebook/internal/ports/secondary"
)

// CategoryServiceImpl implements the CategoryService interface.
type CategoryServiceImpl struct {
	categoryRepo secondary.CategoryRepository
}

// NewCategoryService creates a new CategoryService with injected dependencies.
func NewCategoryService(categoryRepo secondary.CategoryRepository) *CategoryServiceImpl {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

// AddCategory creates a category unless the trimmed name is blank or already present.
// A refused name is not an error.
func (s *CategoryServiceImpl) AddCategory(ctx context.Context, name string) (*primary.AddCategoryResponse, error) {
	existing, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	name = category.NormalizeName(name)
	guard := category.CanAddCategory(category.AddCategoryContext{Name: name, Existing: existing})
	if !guard.Allowed {
		return &primary.AddCategoryResponse{Name: name, Created: false}, nil
	}

	if err := s.CreateCategory(ctx, name); err != nil {
		return nil, err
	}
	return &primary.AddCategoryResponse{Name: name, Created: true}, nil
}

// CreateCategory creates a category row without consulting the current set.
func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, name string) error {
	_, err := s.categoryRepo.Create(ctx, &secondary.CategoryRecord{Name: name})
	return fault.StoreErr("failed to create category", err)
}

// ListCategories returns the category names in store order.
func (s *CategoryServiceImpl) ListCategories(ctx context.Context) ([]string, error) {
	records, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fault.StoreErr("failed to list categories", err)
	}

	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names, nil
}

// DeleteCategory deletes every category row named name.
// Rows are deleted one by one; a failure leaves earlier deletes in place.
// Submissions already carrying the name keep it.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, name string) (int, error) {
	records, err := s.categoryRepo.ListByName(ctx, name)
	if err != nil {
		return 0, fault.StoreErr("failed to find category", err)
	}

	deleted := 0
	for _, r := range records {
		if err := s.categoryRepo.Delete(ctx, r.ID); err != nil {
			return deleted, fault.StoreErr("failed to delete category", err)
		}
		deleted++
	}
	return deleted, nil
}

// Ensure CategoryServiceImpl implements the interface
var _ primary.CategoryService = (*CategoryServiceImpl)(nil)
