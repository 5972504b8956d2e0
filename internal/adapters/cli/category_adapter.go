package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/casebook/internal/core/category"
	"github.com/example/casebook/internal/core/session"
)

// CategoryAdapter translates CLI operations on categories into session messages.
type CategoryAdapter struct {
	session Session
	out     io.Writer
}

// NewCategoryAdapter creates a new CategoryAdapter.
func NewCategoryAdapter(s Session, out io.Writer) *CategoryAdapter {
	return &CategoryAdapter{
		session: s,
		out:     out,
	}
}

// List prints the current category set.
func (a *CategoryAdapter) List(ctx context.Context) ([]string, error) {
	state := a.session.State()
	if err := state.Notice.Err(); err != nil {
		return nil, err
	}

	if len(state.Categories) == 0 {
		fmt.Fprintln(a.out, "No categories yet.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "An administrator can add one:")
		fmt.Fprintln(a.out, "  casebook admin category add Litigation")
		return state.Categories, nil
	}

	for _, name := range state.Categories {
		fmt.Fprintf(a.out, "  %s\n", name)
	}
	return state.Categories, nil
}

// Add creates a category. A blank or duplicate name is reported and skipped.
// Requires admin mode.
func (a *CategoryAdapter) Add(ctx context.Context, name string) (bool, error) {
	if err := requireAdmin(a.session); err != nil {
		return false, err
	}
	guard := category.CanAddCategory(category.AddCategoryContext{
		Name:     name,
		Existing: a.session.State().Categories,
	})

	state := a.session.Dispatch(ctx,
		session.EditNewCategory{Value: name},
		session.AddCategory{Name: name},
	)
	if err := state.Notice.Err(); err != nil {
		return false, err
	}

	if !guard.Allowed {
		fmt.Fprintf(a.out, "Nothing to do: %s\n", guard.Reason)
		return false, nil
	}
	fmt.Fprintf(a.out, "%s Category %s added\n", checkMark(), category.NormalizeName(name))
	return true, nil
}

// Delete removes every category named name. Submissions keep their category.
// Requires admin mode.
func (a *CategoryAdapter) Delete(ctx context.Context, name string) error {
	if err := requireAdmin(a.session); err != nil {
		return err
	}
	if !category.Contains(a.session.State().Categories, name) {
		return fmt.Errorf("category %q not found", name)
	}

	state := a.session.Dispatch(ctx, session.DeleteCategory{Name: name})
	if err := state.Notice.Err(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s Category %s deleted\n", checkMark(), name)
	return nil
}
