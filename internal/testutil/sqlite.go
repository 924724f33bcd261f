package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// SetupSQLite creates a SQLite database in the test's temp directory.
// A file is used instead of :memory: so every pooled connection sees the
// same schema. The connection is closed when the test completes.
func SetupSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, _ := SetupSQLiteFile(t, filepath.Join(t.TempDir(), "test.db"))
	return db
}

// SetupSQLiteFile opens (creating if needed) a SQLite database at path and
// returns it with the path, for tests that also need the file itself.
func SetupSQLiteFile(t *testing.T, path string) (*sql.DB, string) {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open sqlite file: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("failed to ping sqlite: %v", err)
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db, path
}

// ExecSQL executes one or more statements and fails the test on error.
func ExecSQL(t *testing.T, db *sql.DB, statements ...string) {
	t.Helper()

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to execute SQL:\n%s\nerror: %v", stmt, err)
		}
	}
}
