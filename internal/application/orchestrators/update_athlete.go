package orchestrators

import (
	"context"

	"workoutapi/internal/domain/athlete"
	"workoutapi/internal/domain/registry"
)

// UpdateAthleteFields carries the optional fields of a partial update;
// nil pointers leave the stored value untouched. Category and training
// center references are immutable after creation and have no update path.
type UpdateAthleteFields struct {
	Nome   *string
	Idade  *int
	Peso   *float64
	Altura *float64
}

// UpdateAthleteInput carries input for a partial update, keyed by the
// athlete's current name.
type UpdateAthleteInput struct {
	Nome   string
	Fields UpdateAthleteFields
}

// UpdateAthleteDeps holds dependencies for UpdateAthlete.
type UpdateAthleteDeps struct {
	AthleteStore AthleteStore
}

// ExecuteUpdateAthlete applies a partial update to an athlete found by name.
// PRE: nome is non-empty
// POST: Only fields present in the input are overwritten; all other fields
// keep their prior values. Returns registry.NotFoundError if no athlete
// has the given name.
func ExecuteUpdateAthlete(ctx context.Context, input UpdateAthleteInput, deps UpdateAthleteDeps) (athlete.Athlete, error) {
	a, err := deps.AthleteStore.GetByName(ctx, input.Nome)
	if err != nil {
		return athlete.Athlete{}, err
	}

	if input.Fields.Nome != nil {
		a.Name = *input.Fields.Nome
	}
	if input.Fields.Idade != nil {
		a.Age = *input.Fields.Idade
	}
	if input.Fields.Peso != nil {
		a.Weight = *input.Fields.Peso
	}
	if input.Fields.Altura != nil {
		a.Height = *input.Fields.Altura
	}
	if err := a.Validate(); err != nil {
		return athlete.Athlete{}, err
	}

	if err := deps.AthleteStore.Save(ctx, a); err != nil {
		return athlete.Athlete{}, &registry.PersistenceError{Op: "update atleta", Err: err}
	}
	return a, nil
}
