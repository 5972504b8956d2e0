// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/example/casebook/internal/core/effects"
	"github.com/example/casebook/internal/core/session"
	"github.com/example/casebook/internal/core/submission"
	"github.com/example/casebook/internal/ports/primary"
)

// EffectRunner interprets effects.
// This is the "Imperative Shell" - the only place I/O happens.
// Run returns the completion messages to feed back into the session.
type EffectRunner interface {
	Run(ctx context.Context, eff effects.Effect) []session.Msg
}

// DefaultEffectRunner implements EffectRunner against the primary services.
type DefaultEffectRunner struct {
	submissions primary.SubmissionService
	categories  primary.CategoryService
	logger      *log.Logger
}

// NewEffectRunner creates a new DefaultEffectRunner. A nil logger uses the standard logger.
func NewEffectRunner(submissions primary.SubmissionService, categories primary.CategoryService, logger *log.Logger) *DefaultEffectRunner {
	if logger == nil {
		logger = log.Default()
	}
	return &DefaultEffectRunner{
		submissions: submissions,
		categories:  categories,
		logger:      logger,
	}
}

// Run executes one effect.
func (r *DefaultEffectRunner) Run(ctx context.Context, eff effects.Effect) []session.Msg {
	switch typed := eff.(type) {
	case effects.QueryEffect:
		return []session.Msg{r.runQuery(ctx, typed)}
	case effects.PersistEffect:
		return []session.Msg{session.PersistDone{Effect: typed, Err: r.runPersist(ctx, typed)}}
	case effects.LogEffect:
		r.logger.Printf("[%s] %s%s", typed.Level, typed.Message, formatFields(typed.Fields))
		return nil
	default:
		r.logger.Printf("[error] unknown effect type: %T", eff)
		return nil
	}
}

func (r *DefaultEffectRunner) runQuery(ctx context.Context, eff effects.QueryEffect) session.Msg {
	switch eff.Collection {
	case effects.CollectionCategories:
		names, err := r.categories.ListCategories(ctx)
		return session.CategoriesLoaded{Names: names, Err: err}
	default:
		subs, err := r.submissions.ListSubmissions(ctx, primary.SubmissionFilters{})
		return session.SubmissionsLoaded{Submissions: subs, Err: err}
	}
}

func (r *DefaultEffectRunner) runPersist(ctx context.Context, eff effects.PersistEffect) error {
	switch data := eff.Data.(type) {
	case effects.CreateSubmissionData:
		_, err := r.submissions.SubmitUseCase(ctx, primary.SubmitUseCaseRequest{
			Draft: submission.Draft{
				Title:       data.Title,
				Description: data.Description,
				UseCase:     data.UseCase,
				SubmittedBy: data.SubmittedBy,
			},
			SubmittedDate: data.SubmittedDate,
		})
		return err
	case effects.ApproveData:
		return r.submissions.ApproveSubmission(ctx, data.ID, data.Category)
	case effects.SubmissionRef:
		if eff.Operation == effects.OpReject {
			return r.submissions.RejectSubmission(ctx, data.ID)
		}
		return r.submissions.DeleteSubmission(ctx, data.ID)
	case effects.CategoryRef:
		if eff.Operation == effects.OpDelete {
			_, err := r.categories.DeleteCategory(ctx, data.Name)
			return err
		}
		return r.categories.CreateCategory(ctx, data.Name)
	default:
		return fmt.Errorf("unknown %s %s data type: %T", eff.Entity, eff.Operation, eff.Data)
	}
}

func formatFields(fields map[string]any) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}

// Ensure DefaultEffectRunner implements the interface
var _ EffectRunner = (*DefaultEffectRunner)(nil)
