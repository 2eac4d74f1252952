package trainingcenter

import (
	"context"
	"database/sql"
	"testing"

	"workoutapi/internal/adapters/storage"
	"workoutapi/internal/domain/registry"
	domain "workoutapi/internal/domain/trainingcenter"

	_ "modernc.org/sqlite"
)

// newTestStore creates a store backed by a migrated in-memory database.
func newTestStore(t *testing.T) (*SQLiteStore, *sql.DB) {
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
	return NewSQLiteStore(db), db
}

// TestSaveAndGet tests the insert and both lookup paths.
func TestSaveAndGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	c := domain.TrainingCenter{ID: "ct-1", Name: "CT King", Address: "Rua X, Q02", Owner: "Marcos"}
	if err := store.Save(ctx, c); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.GetByID(ctx, "ct-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != c {
		t.Errorf("GetByID = %+v, want %+v", got, c)
	}

	got, err = store.GetByName(ctx, "CT King")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if got != c {
		t.Errorf("GetByName = %+v, want %+v", got, c)
	}
}

// TestGet_NotFound tests that missing rows surface as registry.NotFoundError.
func TestGet_NotFound(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := store.GetByID(ctx, "nope"); !registry.IsNotFound(err) {
		t.Errorf("GetByID: expected NotFoundError, got %v", err)
	}
	if _, err := store.GetByName(ctx, "nope"); !registry.IsNotFound(err) {
		t.Errorf("GetByName: expected NotFoundError, got %v", err)
	}
}

// TestSave_DuplicateName tests the UNIQUE backstop on nome.
func TestSave_DuplicateName(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, domain.TrainingCenter{ID: "ct-1", Name: "CT King", Address: "Rua X", Owner: "Marcos"}); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	err := store.Save(ctx, domain.TrainingCenter{ID: "ct-2", Name: "CT King", Address: "Rua Y", Owner: "Ana"})
	if !registry.IsConflict(err) {
		t.Errorf("expected ConflictError, got %v", err)
	}
}

// TestSave_UpsertByID tests the partial-update write path: saving the same
// ID overwrites all mutable fields.
func TestSave_UpsertByID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, domain.TrainingCenter{ID: "ct-1", Name: "CT King", Address: "Rua X", Owner: "Marcos"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	updated := domain.TrainingCenter{ID: "ct-1", Name: "CT Queen", Address: "Rua Y", Owner: "Ana"}
	if err := store.Save(ctx, updated); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got, err := store.GetByID(ctx, "ct-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != updated {
		t.Errorf("got %+v, want %+v", got, updated)
	}
}

// TestDelete tests deletion, the not-found case and the restrict policy.
func TestDelete(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, domain.TrainingCenter{ID: "ct-1", Name: "CT King", Address: "Rua X", Owner: "Marcos"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Delete(ctx, "ct-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx, "ct-1"); !registry.IsNotFound(err) {
		t.Errorf("expected NotFoundError on double delete, got %v", err)
	}

	// Referenced center cannot be deleted.
	if err := store.Save(ctx, domain.TrainingCenter{ID: "ct-2", Name: "CT Queen", Address: "Rua Y", Owner: "Ana"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	mustExec := func(q string, args ...any) {
		t.Helper()
		if _, err := db.Exec(q, args...); err != nil {
			t.Fatalf("exec failed: %v", err)
		}
	}
	mustExec(`INSERT INTO categoria (id, nome) VALUES ('c1', 'Scale')`)
	mustExec(`INSERT INTO atleta (id, created_at, nome, cpf, idade, peso, altura, sexo, categoria_id, centro_treinamento_id)
	          VALUES ('a1', '2026-01-01T00:00:00Z', 'Joao', '12345678900', 25, 70.5, 1.7, 'M', 'c1', 'ct-2')`)

	if err := store.Delete(ctx, "ct-2"); !registry.IsConflict(err) {
		t.Errorf("expected ConflictError for referenced center, got %v", err)
	}
}

// TestList tests ordering by name and the empty case.
func TestList(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List on empty table failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("got %d rows from empty table", len(all))
	}

	for _, c := range []domain.TrainingCenter{
		{ID: "t2", Name: "CT Queen", Address: "Rua Y", Owner: "Ana"},
		{ID: "t1", Name: "CT King", Address: "Rua X", Owner: "Marcos"},
	} {
		if err := store.Save(ctx, c); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	all, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d rows, want 2", len(all))
	}
	if all[0].Name != "CT King" || all[1].Name != "CT Queen" {
		t.Errorf("unexpected order: %v, %v", all[0].Name, all[1].Name)
	}
}
