// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. Every setup function uses db.GetSchemaSQL() so tests run against
// the authoritative schema. Do not declare tables in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/casebook/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// The pool is pinned to one connection because every :memory: connection
// is a separate database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedSubmission inserts a test submission directly and returns its ID.
func seedSubmission(t *testing.T, db *sql.DB, id, title, status, category string) string {
	t.Helper()
	if title == "" {
		title = "Test Submission"
	}
	if status == "" {
		status = "pending"
	}
	_, err := db.Exec(
		`INSERT INTO submissions (id, title, description, use_case, submitted_by, status, category, submitted_date)
		VALUES (?, ?, 'desc', 'value', 'tester', ?, ?, '2026-10-19')`,
		id, title, status, category,
	)
	if err != nil {
		t.Fatalf("failed to seed submission: %v", err)
	}
	return id
}

// seedCategory inserts a test category row directly and returns its ID.
func seedCategory(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	_, err := db.Exec("INSERT INTO categories (id, name) VALUES (?, ?)", id, name)
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return id
}
