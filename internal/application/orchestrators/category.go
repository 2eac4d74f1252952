package orchestrators

import (
	"context"

	"workoutapi/internal/application/validate"
	"workoutapi/internal/domain/category"
	"workoutapi/internal/domain/registry"

	"github.com/google/uuid"
)

// CategoryStore defines the persistence interface for category orchestration.
type CategoryStore interface {
	GetByID(ctx context.Context, id string) (category.Category, error)
	GetByName(ctx context.Context, nome string) (category.Category, error)
	Save(ctx context.Context, c category.Category) error
	Delete(ctx context.Context, id string) error
}

// RegisterCategoryInput carries input for category registration.
type RegisterCategoryInput struct {
	Nome string
}

// RegisterCategoryDeps holds dependencies for RegisterCategory.
type RegisterCategoryDeps struct {
	CategoryStore CategoryStore
	GenerateID    func() string
}

// ExecuteRegisterCategory coordinates category registration.
// PRE: Non-empty name within length limits
// POST: Category created with generated ID
// INVARIANT: Name is unique; a duplicate yields registry.ConflictError
// whether caught by the pre-check or by the store's UNIQUE backstop
func ExecuteRegisterCategory(ctx context.Context, input RegisterCategoryInput, deps RegisterCategoryDeps) (category.Category, error) {
	if deps.GenerateID == nil {
		deps.GenerateID = func() string { return uuid.New().String() }
	}

	c := category.Category{
		ID:   deps.GenerateID(),
		Name: input.Nome,
	}
	if err := c.Validate(); err != nil {
		return category.Category{}, err
	}

	if err := validate.CheckCategoryNameFree(ctx, deps.CategoryStore, input.Nome); err != nil {
		return category.Category{}, err
	}

	if err := deps.CategoryStore.Save(ctx, c); err != nil {
		if registry.IsConflict(err) {
			return category.Category{}, err
		}
		return category.Category{}, &registry.PersistenceError{Op: "insert categoria", Err: err}
	}
	return c, nil
}

// DeleteCategoryInput carries input for category deletion.
type DeleteCategoryInput struct {
	ID string
}

// DeleteCategoryDeps holds dependencies for DeleteCategory.
type DeleteCategoryDeps struct {
	CategoryStore CategoryStore
}

// ExecuteDeleteCategory removes a category by ID.
// PRE: id is non-empty
// POST: Row removed; registry.NotFoundError if absent, registry.ConflictError
// if an athlete still references it (restrict policy via foreign key)
func ExecuteDeleteCategory(ctx context.Context, input DeleteCategoryInput, deps DeleteCategoryDeps) error {
	if _, err := deps.CategoryStore.GetByID(ctx, input.ID); err != nil {
		return err
	}
	return deps.CategoryStore.Delete(ctx, input.ID)
}
