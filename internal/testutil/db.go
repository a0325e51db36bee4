package testutil

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"todoapp/internal/repo"
)

// OpenTestDB opens a throwaway file-backed sqlite database with the schema
// applied. The file lives under t.TempDir and is removed with it.
func OpenTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repo.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := repo.ApplyMigrations(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
