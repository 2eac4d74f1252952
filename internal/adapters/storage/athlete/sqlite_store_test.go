package athlete

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"workoutapi/internal/adapters/storage"
	domain "workoutapi/internal/domain/athlete"
	"workoutapi/internal/domain/registry"

	_ "modernc.org/sqlite"
)

// newTestStore creates a store backed by a migrated in-memory database with
// one category and one training center pre-inserted for the foreign keys.
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if err := storage.MigrateDB(db); err != nil {
		t.Fatalf("MigrateDB failed: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO categoria (id, nome) VALUES ('cat-1', 'Scale')`); err != nil {
		t.Fatalf("failed to seed categoria: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO centro_treinamento (id, nome, endereco, proprietario) VALUES ('ct-1', 'CT King', 'Rua X', 'Marcos')`); err != nil {
		t.Fatalf("failed to seed centro_treinamento: %v", err)
	}
	return NewSQLiteStore(db)
}

func testAthlete(id, nome, cpf string, createdAt time.Time) domain.Athlete {
	return domain.Athlete{
		ID:               id,
		CreatedAt:        createdAt,
		Name:             nome,
		CPF:              cpf,
		Age:              25,
		Weight:           70.5,
		Height:           1.70,
		Sex:              "M",
		CategoryID:       "cat-1",
		TrainingCenterID: "ct-1",
	}
}

var baseTime = time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

// TestSaveAndGet tests insert and the three lookup paths.
func TestSaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := testAthlete("a-1", "Joao", "12345678900", baseTime)
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	for name, get := range map[string]func() (domain.Athlete, error){
		"GetByID":   func() (domain.Athlete, error) { return store.GetByID(ctx, "a-1") },
		"GetByName": func() (domain.Athlete, error) { return store.GetByName(ctx, "Joao") },
		"GetByCPF":  func() (domain.Athlete, error) { return store.GetByCPF(ctx, "12345678900") },
	} {
		got, err := get()
		if err != nil {
			t.Fatalf("%s failed: %v", name, err)
		}
		if !got.CreatedAt.Equal(a.CreatedAt) {
			t.Errorf("%s created_at = %v, want %v", name, got.CreatedAt, a.CreatedAt)
		}
		got.CreatedAt = a.CreatedAt
		if got != a {
			t.Errorf("%s = %+v, want %+v", name, got, a)
		}
	}
}

// TestGet_NotFound tests that missing rows surface as registry.NotFoundError.
func TestGet_NotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.GetByID(ctx, "nope"); !registry.IsNotFound(err) {
		t.Errorf("GetByID: expected NotFoundError, got %v", err)
	}
	if _, err := store.GetByName(ctx, "nope"); !registry.IsNotFound(err) {
		t.Errorf("GetByName: expected NotFoundError, got %v", err)
	}
	if _, err := store.GetByCPF(ctx, "000"); !registry.IsNotFound(err) {
		t.Errorf("GetByCPF: expected NotFoundError, got %v", err)
	}
}

// TestGetByName_OldestWins tests the tie-break for non-unique names: the
// oldest row is returned.
func TestGetByName_OldestWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	newer := testAthlete("a-2", "Joao", "22222222222", baseTime.Add(time.Hour))
	older := testAthlete("a-1", "Joao", "11111111111", baseTime)
	if err := store.Save(ctx, newer); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(ctx, older); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.GetByName(ctx, "Joao")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if got.ID != "a-1" {
		t.Errorf("got %s, want oldest a-1", got.ID)
	}
}

// TestSave_DuplicateCPF tests the UNIQUE backstop on the document number.
func TestSave_DuplicateCPF(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testAthlete("a-1", "Joao", "12345678900", baseTime)); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	err := store.Save(ctx, testAthlete("a-2", "Maria", "12345678900", baseTime))
	if !registry.IsConflict(err) {
		t.Errorf("expected ConflictError, got %v", err)
	}
}

// TestSave_UpsertKeepsReferences tests that updating by ID overwrites the
// mutable fields but never the category or training-center references.
func TestSave_UpsertKeepsReferences(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := testAthlete("a-1", "Joao", "12345678900", baseTime)
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	a.Name = "Joao Silva"
	a.Age = 26
	a.CategoryID = "cat-other" // must be ignored by the update path
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got, err := store.GetByID(ctx, "a-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Joao Silva" || got.Age != 26 {
		t.Errorf("mutable fields not updated: %+v", got)
	}
	if got.CategoryID != "cat-1" {
		t.Errorf("categoria reference changed on update: %s", got.CategoryID)
	}
}

// TestSave_RejectsUnknownReference tests the FK check on insert.
func TestSave_RejectsUnknownReference(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := testAthlete("a-1", "Joao", "12345678900", baseTime)
	a.CategoryID = "ghost"
	if err := store.Save(ctx, a); err == nil {
		t.Error("expected error for unknown categoria reference")
	}
}

// TestDelete tests deletion and the not-found case.
func TestDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testAthlete("a-1", "Joao", "12345678900", baseTime)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Delete(ctx, "a-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx, "a-1"); !registry.IsNotFound(err) {
		t.Errorf("expected NotFoundError on double delete, got %v", err)
	}
}

// TestList tests creation-time ordering and the empty case.
func TestList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List on empty table failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("got %d rows from empty table", len(all))
	}

	if err := store.Save(ctx, testAthlete("a-2", "Maria", "22222222222", baseTime.Add(time.Hour))); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(ctx, testAthlete("a-1", "Joao", "11111111111", baseTime)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	all, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d rows, want 2", len(all))
	}
	if all[0].ID != "a-1" || all[1].ID != "a-2" {
		t.Errorf("unexpected order: %s, %s", all[0].ID, all[1].ID)
	}
}

// TestCreatedAt_RoundTrip tests that sub-second precision survives storage.
func TestCreatedAt_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := time.Date(2026, 3, 14, 15, 9, 26, 535897932, time.UTC)
	if err := store.Save(ctx, testAthlete("a-1", "Joao", "12345678900", created)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.GetByID(ctx, "a-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, created)
	}
}
