// Package testdb provides a shared test database helper for fast,
// realistic testing against an in-memory SQLite database.
package testdb

import (
	"context"
	"testing"

	"github.com/helixml/antigone/infrastructure/persistence"
	"github.com/helixml/antigone/internal/database"
)

// New creates an in-memory SQLite database with all migrations applied.
// The database is automatically closed when the test finishes.
func New(t *testing.T) database.Database {
	t.Helper()
	db := open(t)
	if err := persistence.AutoMigrate(db); err != nil {
		t.Fatalf("testdb.New: auto migrate: %v", err)
	}
	return db
}

// Fixture is a set of rows to insert into a migrated database.
type Fixture struct {
	Lines       []persistence.LineModel
	Lemmas      []persistence.LemmaModel
	Definitions []persistence.DefinitionModel
}

// Seeded creates a migrated database populated with f.
func Seeded(t *testing.T, f Fixture) database.Database {
	t.Helper()
	db := New(t)
	Insert(t, db, f)
	return db
}

// Insert writes the rows of f into db.
func Insert(t *testing.T, db database.Database, f Fixture) {
	t.Helper()
	session := db.Session(context.Background())
	if len(f.Lines) > 0 {
		if err := session.Create(&f.Lines).Error; err != nil {
			t.Fatalf("testdb.Insert: lines: %v", err)
		}
	}
	if len(f.Lemmas) > 0 {
		if err := session.Create(&f.Lemmas).Error; err != nil {
			t.Fatalf("testdb.Insert: lemmas: %v", err)
		}
	}
	if len(f.Definitions) > 0 {
		if err := session.Create(&f.Definitions).Error; err != nil {
			t.Fatalf("testdb.Insert: definitions: %v", err)
		}
	}
}

// Str returns a pointer to s, for nullable model columns.
func Str(s string) *string { return &s }

func open(t *testing.T) database.Database {
	t.Helper()
	db, err := database.NewDatabase(context.Background(), "sqlite:///:memory:")
	if err != nil {
		t.Fatalf("testdb: open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// File creates a migrated SQLite database file at path, populates it with f
// and closes it, so a client can open the same file afterwards.
func File(t *testing.T, path string, f Fixture) {
	t.Helper()
	db, err := database.NewDatabase(context.Background(), "sqlite:///"+path)
	if err != nil {
		t.Fatalf("testdb.File: open database: %v", err)
	}
	if err := persistence.AutoMigrate(db); err != nil {
		_ = db.Close()
		t.Fatalf("testdb.File: auto migrate: %v", err)
	}
	Insert(t, db, f)
	if err := db.Close(); err != nil {
		t.Fatalf("testdb.File: close: %v", err)
	}
}
