package orchestrators

import (
	"context"
	"errors"
	"testing"

	"workoutapi/internal/domain/category"
	"workoutapi/internal/domain/registry"
)

// mockCategoryStore implements CategoryStore for testing.
type mockCategoryStore struct {
	categories map[string]category.Category
	saveErr    error
	deleteErr  error
}

func newMockCategoryStore() *mockCategoryStore {
	return &mockCategoryStore{categories: make(map[string]category.Category)}
}

// seededCategoryStore returns a store holding the "Scale" category used by
// the athlete registration tests.
func seededCategoryStore() *mockCategoryStore {
	s := newMockCategoryStore()
	s.categories["cat-1"] = category.Category{ID: "cat-1", Name: "Scale"}
	return s
}

// GetByID implements CategoryStore.
// POST: returns the category or registry.NotFoundError
func (m *mockCategoryStore) GetByID(_ context.Context, id string) (category.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return category.Category{}, &registry.NotFoundError{Kind: registry.KindCategory, Key: id}
	}
	return c, nil
}

// GetByName implements CategoryStore.
// POST: returns the category or registry.NotFoundError
func (m *mockCategoryStore) GetByName(_ context.Context, nome string) (category.Category, error) {
	for _, c := range m.categories {
		if c.Name == nome {
			return c, nil
		}
	}
	return category.Category{}, &registry.NotFoundError{Kind: registry.KindCategory, Key: nome}
}

// Save implements CategoryStore.
// POST: category persisted, or the injected error returned
func (m *mockCategoryStore) Save(_ context.Context, c category.Category) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.categories[c.ID] = c
	return nil
}

// Delete implements CategoryStore.
// POST: category removed, or the injected error returned
func (m *mockCategoryStore) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.categories[id]; !ok {
		return &registry.NotFoundError{Kind: registry.KindCategory, Key: id}
	}
	delete(m.categories, id)
	return nil
}

// TestExecuteRegisterCategory_Valid tests creating a category with valid input.
func TestExecuteRegisterCategory_Valid(t *testing.T) {
	store := newMockCategoryStore()
	c, err := ExecuteRegisterCategory(context.Background(), RegisterCategoryInput{Nome: "Scale"}, RegisterCategoryDeps{
		CategoryStore: store,
		GenerateID:    fixedID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "test-id-001" {
		t.Errorf("expected ID=test-id-001, got %s", c.ID)
	}
	if c.Name != "Scale" {
		t.Errorf("expected Name=Scale, got %s", c.Name)
	}
	if _, ok := store.categories["test-id-001"]; !ok {
		t.Error("expected category to be persisted in store")
	}
}

// TestExecuteRegisterCategory_EmptyName tests that an empty name is rejected.
func TestExecuteRegisterCategory_EmptyName(t *testing.T) {
	store := newMockCategoryStore()
	_, err := ExecuteRegisterCategory(context.Background(), RegisterCategoryInput{Nome: "  "}, RegisterCategoryDeps{
		CategoryStore: store,
		GenerateID:    fixedID,
	})
	if err == nil {
		t.Error("expected error for empty name")
	}
	if len(store.categories) != 0 {
		t.Error("invalid category persisted")
	}
}

// TestExecuteRegisterCategory_DuplicateName tests the name pre-check.
func TestExecuteRegisterCategory_DuplicateName(t *testing.T) {
	store := seededCategoryStore()
	_, err := ExecuteRegisterCategory(context.Background(), RegisterCategoryInput{Nome: "Scale"}, RegisterCategoryDeps{
		CategoryStore: store,
		GenerateID:    fixedID,
	})
	var conflict *registry.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Value != "Scale" {
		t.Errorf("conflict value = %s, want Scale", conflict.Value)
	}
}

// TestExecuteRegisterCategory_StoreBackstop tests that a UNIQUE conflict
// from the store passes through while other failures wrap as
// PersistenceError.
func TestExecuteRegisterCategory_StoreBackstop(t *testing.T) {
	store := newMockCategoryStore()
	store.saveErr = &registry.ConflictError{Kind: registry.KindCategory, Field: "nome", Value: "Scale"}
	_, err := ExecuteRegisterCategory(context.Background(), RegisterCategoryInput{Nome: "Scale"}, RegisterCategoryDeps{
		CategoryStore: store,
		GenerateID:    fixedID,
	})
	if !registry.IsConflict(err) {
		t.Errorf("expected ConflictError passthrough, got %v", err)
	}

	store.saveErr = errors.New("disk full")
	_, err = ExecuteRegisterCategory(context.Background(), RegisterCategoryInput{Nome: "Scale"}, RegisterCategoryDeps{
		CategoryStore: store,
		GenerateID:    fixedID,
	})
	var persistence *registry.PersistenceError
	if !errors.As(err, &persistence) {
		t.Errorf("expected PersistenceError, got %v", err)
	}
}

// TestExecuteDeleteCategory tests deletion and the not-found case.
func TestExecuteDeleteCategory(t *testing.T) {
	store := seededCategoryStore()
	err := ExecuteDeleteCategory(context.Background(), DeleteCategoryInput{ID: "cat-1"}, DeleteCategoryDeps{CategoryStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.categories) != 0 {
		t.Error("category not removed")
	}

	err = ExecuteDeleteCategory(context.Background(), DeleteCategoryInput{ID: "cat-1"}, DeleteCategoryDeps{CategoryStore: store})
	if !registry.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

// TestExecuteDeleteCategory_Referenced tests that the store's restrict
// conflict propagates untouched.
func TestExecuteDeleteCategory_Referenced(t *testing.T) {
	store := seededCategoryStore()
	store.deleteErr = &registry.ConflictError{Kind: registry.KindCategory, Field: "id", Value: "cat-1"}

	err := ExecuteDeleteCategory(context.Background(), DeleteCategoryInput{ID: "cat-1"}, DeleteCategoryDeps{CategoryStore: store})
	if !registry.IsConflict(err) {
		t.Errorf("expected ConflictError, got %v", err)
	}
}
