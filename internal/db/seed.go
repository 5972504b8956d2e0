package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates an empty database with development fixtures:
// a starter category set, approved examples in each category, and one
// submission awaiting review.
func SeedFixtures(database *sql.DB) error {
	now := time.Now()
	created := now.Format(time.RFC3339)
	today := now.Format("2006-01-02")

	categories := []struct{ id, name string }{
		{"CAT-001", "Litigation"},
		{"CAT-002", "Transactional"},
		{"CAT-003", "Research"},
	}
	for _, c := range categories {
		if _, err := database.Exec(
			"INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)",
			c.id, c.name, created,
		); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	}

	submissions := []struct {
		id, title, description, useCase, by, status, category string
		tags                                                  []string
	}{
		{
			"SUB-001", "Contract Review", "Flags non-standard indemnity clauses in vendor agreements",
			"Saves 5 hours/week on first-pass review", "Alex", "approved", "Transactional",
			[]string{"contracts"},
		},
		{
			"SUB-002", "Docket Watch", "Summarizes new filings on tracked matters each morning",
			"Partners see overnight activity before 9am", "Sam", "approved", "Litigation", nil,
		},
		{
			"SUB-003", "Case Law Digest", "Drafts a one-page digest of cited authorities",
			"Cuts research memo prep in half", "Jordan", "pending", "", nil,
		},
	}
	for _, s := range submissions {
		if _, err := database.Exec(
			`INSERT INTO submissions (id, title, description, use_case, submitted_by, status, category, submitted_date, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.id, s.title, s.description, s.useCase, s.by, s.status, s.category, today, created,
		); err != nil {
			return fmt.Errorf("seed submissions: %w", err)
		}
		for _, tag := range s.tags {
			if _, err := database.Exec(
				"INSERT INTO submission_tags (submission_id, tag) VALUES (?, ?)",
				s.id, tag,
			); err != nil {
				return fmt.Errorf("seed submission tags: %w", err)
			}
		}
	}

	return nil
}
