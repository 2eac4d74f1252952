package orchestrators

import (
	"context"
)

// DeleteAthleteInput carries input for athlete deletion. Athletes are
// deleted by name, not by ID — an asymmetry preserved from the original
// service contract (clients may depend on it).
type DeleteAthleteInput struct {
	Nome string
}

// DeleteAthleteDeps holds dependencies for DeleteAthlete.
type DeleteAthleteDeps struct {
	AthleteStore AthleteStore
}

// ExecuteDeleteAthlete removes the athlete with the given name.
// PRE: nome is non-empty
// POST: Row removed; registry.NotFoundError if no athlete has the name
func ExecuteDeleteAthlete(ctx context.Context, input DeleteAthleteInput, deps DeleteAthleteDeps) error {
	a, err := deps.AthleteStore.GetByName(ctx, input.Nome)
	if err != nil {
		return err
	}
	return deps.AthleteStore.Delete(ctx, a.ID)
}
