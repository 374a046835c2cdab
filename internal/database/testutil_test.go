package database

import (
	"context"
	"database/sql"
	"testing"
)

// setupTestDB creates an in-memory database with the schema applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
