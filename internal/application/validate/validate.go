// Package validate enforces the registry's uniqueness and referential
// invariants before a write reaches a store. It holds no state: every
// check reads through the store at validation time.
//
// The check-then-insert sequence these helpers take part in is not atomic
// against concurrent writers; the stores' UNIQUE constraints are the
// backstop, and a constraint violation on insert is reported identically
// to a failed check here.
package validate

import (
	"context"

	"workoutapi/internal/domain/athlete"
	"workoutapi/internal/domain/category"
	"workoutapi/internal/domain/registry"
	"workoutapi/internal/domain/trainingcenter"
)

// CategoryLookup is the read-side slice of the category store needed here.
type CategoryLookup interface {
	GetByName(ctx context.Context, nome string) (category.Category, error)
}

// TrainingCenterLookup is the read-side slice of the training-center store.
type TrainingCenterLookup interface {
	GetByName(ctx context.Context, nome string) (trainingcenter.TrainingCenter, error)
}

// AthleteLookup is the read-side slice of the athlete store.
type AthleteLookup interface {
	GetByCPF(ctx context.Context, cpf string) (athlete.Athlete, error)
}

// ResolveCategory maps a category name to its stored row.
// POST: Returns the row, or registry.UnresolvedReferenceError naming the
// missing category
func ResolveCategory(ctx context.Context, store CategoryLookup, nome string) (category.Category, error) {
	c, err := store.GetByName(ctx, nome)
	if registry.IsNotFound(err) {
		return category.Category{}, &registry.UnresolvedReferenceError{Kind: registry.KindCategory, Name: nome}
	}
	return c, err
}

// ResolveTrainingCenter maps a training-center name to its stored row.
// POST: Returns the row, or registry.UnresolvedReferenceError naming the
// missing center
func ResolveTrainingCenter(ctx context.Context, store TrainingCenterLookup, nome string) (trainingcenter.TrainingCenter, error) {
	t, err := store.GetByName(ctx, nome)
	if registry.IsNotFound(err) {
		return trainingcenter.TrainingCenter{}, &registry.UnresolvedReferenceError{Kind: registry.KindTrainingCenter, Name: nome}
	}
	return t, err
}

// CheckCategoryNameFree verifies no category exists with the given name.
// POST: nil when free, registry.ConflictError when taken
func CheckCategoryNameFree(ctx context.Context, store CategoryLookup, nome string) error {
	_, err := store.GetByName(ctx, nome)
	return checkFree(err, &registry.ConflictError{Kind: registry.KindCategory, Field: "nome", Value: nome})
}

// CheckTrainingCenterNameFree verifies no training center exists with the
// given name.
// POST: nil when free, registry.ConflictError when taken
func CheckTrainingCenterNameFree(ctx context.Context, store TrainingCenterLookup, nome string) error {
	_, err := store.GetByName(ctx, nome)
	return checkFree(err, &registry.ConflictError{Kind: registry.KindTrainingCenter, Field: "nome", Value: nome})
}

// CheckDocumentFree verifies no athlete exists with the given document.
// POST: nil when free, registry.ConflictError when taken
func CheckDocumentFree(ctx context.Context, store AthleteLookup, cpf string) error {
	_, err := store.GetByCPF(ctx, cpf)
	return checkFree(err, &registry.ConflictError{Kind: registry.KindAthlete, Field: "cpf", Value: cpf})
}

// checkFree inverts a lookup result: found means conflict, absent means ok.
func checkFree(lookupErr error, conflict *registry.ConflictError) error {
	if lookupErr == nil {
		return conflict
	}
	if registry.IsNotFound(lookupErr) {
		return nil
	}
	return lookupErr
}
