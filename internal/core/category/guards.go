// Package category contains the pure business logic for the category taxonomy.
// Guards are pure functions that evaluate preconditions without side effects.
package category

import (
	"fmt"
	"strings"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// NormalizeName trims surrounding whitespace from a category name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// Contains reports whether names holds name, compared exactly (case-sensitive).
func Contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// AddCategoryContext provides context for category creation guards.
type AddCategoryContext struct {
	Name     string   // as typed; normalized by the guard
	Existing []string // current local category set
}

// CanAddCategory evaluates whether a category can be created.
// Rules:
// - the trimmed name must not be empty
// - the trimmed name must not already be in the current set (exact match)
//
// Callers treat a refusal as a silent no-op.
func CanAddCategory(ctx AddCategoryContext) GuardResult {
	name := NormalizeName(ctx.Name)
	if name == "" {
		return GuardResult{Allowed: false, Reason: "category name is blank"}
	}

	if Contains(ctx.Existing, name) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("category %q already exists", name),
		}
	}

	return GuardResult{Allowed: true}
}
