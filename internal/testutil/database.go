package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the migrations in internal/database/migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE comparison (
	    id TEXT PRIMARY KEY,
	    location TEXT NOT NULL,
	    sizing_kind TEXT NOT NULL,
	    sizing_value REAL NOT NULL,
	    parameters TEXT NOT NULL,
	    calculation TEXT NOT NULL,
	    cash TEXT NOT NULL,
	    credit TEXT NOT NULL,
	    leasing TEXT NOT NULL,
	    esco TEXT NOT NULL,
	    created_at TEXT NOT NULL
	);

	CREATE INDEX idx_comparison_created_at ON comparison (created_at);

	CREATE TABLE audit_simulation (
	    id TEXT PRIMARY KEY,
	    location TEXT NOT NULL,
	    building_type TEXT NOT NULL,
	    climate_zone TEXT NOT NULL,
	    consumption TEXT NOT NULL,
	    production TEXT NOT NULL,
	    economics TEXT NOT NULL,
	    projection TEXT NOT NULL,
	    created_at TEXT NOT NULL
	);

	CREATE INDEX idx_audit_simulation_created_at ON audit_simulation (created_at);
	`

	_, err := db.Exec(schema)
	return err
}
