package orchestrators

import (
	"context"

	"workoutapi/internal/application/validate"
	"workoutapi/internal/domain/registry"
	"workoutapi/internal/domain/trainingcenter"

	"github.com/google/uuid"
)

// TrainingCenterStore defines the persistence interface for training-center
// orchestration.
type TrainingCenterStore interface {
	GetByID(ctx context.Context, id string) (trainingcenter.TrainingCenter, error)
	GetByName(ctx context.Context, nome string) (trainingcenter.TrainingCenter, error)
	Save(ctx context.Context, t trainingcenter.TrainingCenter) error
	Delete(ctx context.Context, id string) error
}

// RegisterTrainingCenterInput carries input for center registration.
type RegisterTrainingCenterInput struct {
	Nome         string
	Endereco     string
	Proprietario string
}

// RegisterTrainingCenterDeps holds dependencies for RegisterTrainingCenter.
type RegisterTrainingCenterDeps struct {
	TrainingCenterStore TrainingCenterStore
	GenerateID          func() string
}

// ExecuteRegisterTrainingCenter coordinates training-center registration.
// PRE: Non-empty name, address and owner within length limits
// POST: Center created with generated ID
// INVARIANT: Name is unique; duplicates yield registry.ConflictError
func ExecuteRegisterTrainingCenter(ctx context.Context, input RegisterTrainingCenterInput, deps RegisterTrainingCenterDeps) (trainingcenter.TrainingCenter, error) {
	if deps.GenerateID == nil {
		deps.GenerateID = func() string { return uuid.New().String() }
	}

	t := trainingcenter.TrainingCenter{
		ID:      deps.GenerateID(),
		Name:    input.Nome,
		Address: input.Endereco,
		Owner:   input.Proprietario,
	}
	if err := t.Validate(); err != nil {
		return trainingcenter.TrainingCenter{}, err
	}

	if err := validate.CheckTrainingCenterNameFree(ctx, deps.TrainingCenterStore, input.Nome); err != nil {
		return trainingcenter.TrainingCenter{}, err
	}

	if err := deps.TrainingCenterStore.Save(ctx, t); err != nil {
		if registry.IsConflict(err) {
			return trainingcenter.TrainingCenter{}, err
		}
		return trainingcenter.TrainingCenter{}, &registry.PersistenceError{Op: "insert centro_treinamento", Err: err}
	}
	return t, nil
}

// UpdateTrainingCenterFields carries the optional fields of a partial
// update; nil pointers leave the stored value untouched.
type UpdateTrainingCenterFields struct {
	Nome         *string
	Endereco     *string
	Proprietario *string
}

// UpdateTrainingCenterInput carries input for a partial update by ID.
type UpdateTrainingCenterInput struct {
	ID     string
	Fields UpdateTrainingCenterFields
}

// UpdateTrainingCenterDeps holds dependencies for UpdateTrainingCenter.
type UpdateTrainingCenterDeps struct {
	TrainingCenterStore TrainingCenterStore
}

// ExecuteUpdateTrainingCenter applies a partial update to a center.
// PRE: id is non-empty
// POST: Only fields present in the input are overwritten; the updated row
// is returned. registry.NotFoundError if the id is absent.
func ExecuteUpdateTrainingCenter(ctx context.Context, input UpdateTrainingCenterInput, deps UpdateTrainingCenterDeps) (trainingcenter.TrainingCenter, error) {
	t, err := deps.TrainingCenterStore.GetByID(ctx, input.ID)
	if err != nil {
		return trainingcenter.TrainingCenter{}, err
	}

	if input.Fields.Nome != nil {
		t.Name = *input.Fields.Nome
	}
	if input.Fields.Endereco != nil {
		t.Address = *input.Fields.Endereco
	}
	if input.Fields.Proprietario != nil {
		t.Owner = *input.Fields.Proprietario
	}
	if err := t.Validate(); err != nil {
		return trainingcenter.TrainingCenter{}, err
	}

	if err := deps.TrainingCenterStore.Save(ctx, t); err != nil {
		if registry.IsConflict(err) {
			return trainingcenter.TrainingCenter{}, err
		}
		return trainingcenter.TrainingCenter{}, &registry.PersistenceError{Op: "update centro_treinamento", Err: err}
	}
	return t, nil
}

// DeleteTrainingCenterInput carries input for center deletion.
type DeleteTrainingCenterInput struct {
	ID string
}

// DeleteTrainingCenterDeps holds dependencies for DeleteTrainingCenter.
type DeleteTrainingCenterDeps struct {
	TrainingCenterStore TrainingCenterStore
}

// ExecuteDeleteTrainingCenter removes a training center by ID.
// PRE: id is non-empty
// POST: Row removed; registry.NotFoundError if absent, registry.ConflictError
// if an athlete still references it (restrict policy via foreign key)
func ExecuteDeleteTrainingCenter(ctx context.Context, input DeleteTrainingCenterInput, deps DeleteTrainingCenterDeps) error {
	if _, err := deps.TrainingCenterStore.GetByID(ctx, input.ID); err != nil {
		return err
	}
	return deps.TrainingCenterStore.Delete(ctx, input.ID)
}
