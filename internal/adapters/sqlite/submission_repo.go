// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/casebook/internal/core/fault"
	"github.com/example/casebook/internal/ports/secondary"
)

const submissionColumns = "id, title, description, use_case, submitted_by, status, category, submitted_date, created_at"

// SubmissionRepository implements secondary.SubmissionRepository with SQLite.
type SubmissionRepository struct {
	db *sql.DB
}

// NewSubmissionRepository creates a new SQLite submission repository.
func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// List returns every submission in insertion order.
func (r *SubmissionRepository) List(ctx context.Context) ([]*secondary.SubmissionRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+submissionColumns+" FROM submissions ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	var submissions []*secondary.SubmissionRecord
	for rows.Next() {
		record, err := scanSubmission(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, record)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	rows.Close()

	// Tags are loaded after the submission cursor is closed so a single
	// connection is enough.
	tags, err := r.allTags(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range submissions {
		s.Tags = tags[s.ID]
	}

	return submissions, nil
}

// GetByID retrieves a submission by its ID.
func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*secondary.SubmissionRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+submissionColumns+" FROM submissions WHERE id = ?", id)
	record, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("submission %s: %w", id, fault.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	tags, err := r.tagsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Tags = tags

	return record, nil
}

// Create persists a new submission with a generated ID.
func (r *SubmissionRepository) Create(ctx context.Context, submission *secondary.SubmissionRecord) (string, error) {
	id := uuid.NewString()

	status := submission.Status
	if status == "" {
		status = "pending"
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO submissions (id, title, description, use_case, submitted_by, status, category, submitted_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, submission.Title, submission.Description, submission.UseCase, submission.SubmittedBy,
		status, submission.Category, submission.SubmittedDate,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create submission: %w", err)
	}

	for _, tag := range submission.Tags {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO submission_tags (submission_id, tag) VALUES (?, ?)",
			id, tag,
		); err != nil {
			return "", fmt.Errorf("failed to tag submission: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit submission: %w", err)
	}

	return id, nil
}

// Update applies the non-empty fields of patch.
func (r *SubmissionRepository) Update(ctx context.Context, id string, patch secondary.SubmissionPatch) error {
	var sets []string
	var args []any

	if patch.Status != "" {
		sets = append(sets, "status = ?")
		args = append(args, patch.Status)
	}
	if patch.Category != "" {
		sets = append(sets, "category = ?")
		args = append(args, patch.Category)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	result, err := r.db.ExecContext(ctx,
		"UPDATE submissions SET "+strings.Join(sets, ", ")+" WHERE id = ?",
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("submission %s: %w", id, fault.ErrNotFound)
	}

	return nil
}

// Delete removes a submission and its tags.
func (r *SubmissionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM submissions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("submission %s: %w", id, fault.ErrNotFound)
	}

	// Foreign keys may be off on connections opened outside db.Open.
	if _, err := r.db.ExecContext(ctx, "DELETE FROM submission_tags WHERE submission_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete submission tags: %w", err)
	}

	return nil
}

func (r *SubmissionRepository) tagsFor(ctx context.Context, id string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT tag FROM submission_tags WHERE submission_id = ? ORDER BY rowid", id)
	if err != nil {
		return nil, fmt.Errorf("failed to list submission tags: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan submission tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (r *SubmissionRepository) allTags(ctx context.Context) (map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT submission_id, tag FROM submission_tags ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list submission tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[string][]string)
	for rows.Next() {
		var id, tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, fmt.Errorf("failed to scan submission tag: %w", err)
		}
		tags[id] = append(tags[id], tag)
	}
	return tags, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*secondary.SubmissionRecord, error) {
	var createdAt sql.NullTime
	record := &secondary.SubmissionRecord{}
	err := row.Scan(
		&record.ID, &record.Title, &record.Description, &record.UseCase, &record.SubmittedBy,
		&record.Status, &record.Category, &record.SubmittedDate, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time.Format(time.RFC3339)
	}
	return record, nil
}

// Ensure SubmissionRepository implements the interface
var _ secondary.SubmissionRepository = (*SubmissionRepository)(nil)
