package orchestrators

import (
	"context"
	"time"

	"workoutapi/internal/application/validate"
	"workoutapi/internal/domain/athlete"
	"workoutapi/internal/domain/category"
	"workoutapi/internal/domain/registry"
	"workoutapi/internal/domain/trainingcenter"

	"github.com/google/uuid"
)

// AthleteStore defines the persistence interface for athlete orchestration.
type AthleteStore interface {
	GetByName(ctx context.Context, nome string) (athlete.Athlete, error)
	GetByCPF(ctx context.Context, cpf string) (athlete.Athlete, error)
	Save(ctx context.Context, a athlete.Athlete) error
	Delete(ctx context.Context, id string) error
}

// RegisterAthleteInput carries input for athlete registration. Categoria
// and CentroTreinamento are references by name, resolved to IDs here.
type RegisterAthleteInput struct {
	Nome              string
	CPF               string
	Idade             int
	Peso              float64
	Altura            float64
	Sexo              string
	Categoria         string
	CentroTreinamento string
}

// RegisterAthleteDeps holds dependencies for RegisterAthlete.
type RegisterAthleteDeps struct {
	AthleteStore        AthleteStore
	CategoryStore       validate.CategoryLookup
	TrainingCenterStore validate.TrainingCenterLookup
	GenerateID          func() string
	Now                 func() time.Time
}

// RegisterAthleteResult is the created athlete together with the resolved
// reference rows, so callers can render display names without re-reading.
type RegisterAthleteResult struct {
	Athlete        athlete.Athlete
	Category       category.Category
	TrainingCenter trainingcenter.TrainingCenter
}

// ExecuteRegisterAthlete coordinates athlete registration, the one
// multi-step validation path in the system.
//
// Check order is part of the contract: category reference first, then
// training-center reference, then document uniqueness. The first failing
// check wins and short-circuits; failures are never aggregated.
// PRE: Input fields are schema-valid
// POST: Athlete persisted with generated ID and creation timestamp,
// references resolved to existing rows at creation time
// INVARIANT: CPF is unique; a duplicate yields registry.ConflictError
// whether caught by the pre-check or by the store's UNIQUE backstop
func ExecuteRegisterAthlete(ctx context.Context, input RegisterAthleteInput, deps RegisterAthleteDeps) (RegisterAthleteResult, error) {
	if deps.GenerateID == nil {
		deps.GenerateID = func() string { return uuid.New().String() }
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	cat, err := validate.ResolveCategory(ctx, deps.CategoryStore, input.Categoria)
	if err != nil {
		return RegisterAthleteResult{}, err
	}

	center, err := validate.ResolveTrainingCenter(ctx, deps.TrainingCenterStore, input.CentroTreinamento)
	if err != nil {
		return RegisterAthleteResult{}, err
	}

	if err := validate.CheckDocumentFree(ctx, deps.AthleteStore, input.CPF); err != nil {
		return RegisterAthleteResult{}, err
	}

	a := athlete.Athlete{
		ID:               deps.GenerateID(),
		CreatedAt:        deps.Now().UTC(),
		Name:             input.Nome,
		CPF:              input.CPF,
		Age:              input.Idade,
		Weight:           input.Peso,
		Height:           input.Altura,
		Sex:              input.Sexo,
		CategoryID:       cat.ID,
		TrainingCenterID: center.ID,
	}
	if err := a.Validate(); err != nil {
		return RegisterAthleteResult{}, err
	}

	if err := deps.AthleteStore.Save(ctx, a); err != nil {
		if registry.IsConflict(err) {
			return RegisterAthleteResult{}, err
		}
		return RegisterAthleteResult{}, &registry.PersistenceError{Op: "insert atleta", Err: err}
	}

	return RegisterAthleteResult{Athlete: a, Category: cat, TrainingCenter: center}, nil
}
