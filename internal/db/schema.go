package db

import "database/sql"

// SchemaSQL is the complete schema for fresh casebook installs.
// This schema reflects the current state after all migrations.
//
// This is the single source of truth for the database schema. Repository
// tests load it through GetSchemaSQL() instead of declaring their own tables,
// so a column referenced by repository code but missing here fails the tests
// with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Submissions (proposed AI use cases)
CREATE TABLE IF NOT EXISTS submissions (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	use_case TEXT NOT NULL,
	submitted_by TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('pending', 'approved')) DEFAULT 'pending',
	category TEXT NOT NULL DEFAULT '',
	submitted_date TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_submissions_status ON submissions(status);

-- Submission tags (free-form labels, rendered when present)
CREATE TABLE IF NOT EXISTS submission_tags (
	submission_id TEXT NOT NULL,
	tag TEXT NOT NULL,
	FOREIGN KEY (submission_id) REFERENCES submissions(id) ON DELETE CASCADE,
	UNIQUE(submission_id, tag)
);

-- Categories (names are not unique at the store level)
CREATE TABLE IF NOT EXISTS categories (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_categories_name ON categories(name);
`

// InitSchema creates the schema on a fresh database and migrates an existing one.
func InitSchema(db *sql.DB) error {
	var tableCount int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(db)
	}

	// Fresh install - create the current schema directly and mark every migration applied
	if _, err := db.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(db); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
