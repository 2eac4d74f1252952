package projections

import (
	"context"
)

// GetAthleteQuery carries query parameters for the single-athlete lookup.
type GetAthleteQuery struct {
	Nome string
}

// AthleteSummary is the single-item projection: deliberately minimal,
// name and document only, distinct from the listing shape.
type AthleteSummary struct {
	Nome string
	CPF  string
}

// GetAthleteDeps holds dependencies for GetAthlete.
type GetAthleteDeps struct {
	AthleteStore AthleteStore
}

// QueryGetAthlete retrieves the minimal projection of one athlete by name.
// POST: Returns the summary, or the store's registry.NotFoundError untouched
func QueryGetAthlete(ctx context.Context, query GetAthleteQuery, deps GetAthleteDeps) (AthleteSummary, error) {
	a, err := deps.AthleteStore.GetByName(ctx, query.Nome)
	if err != nil {
		return AthleteSummary{}, err
	}
	return AthleteSummary{Nome: a.Name, CPF: a.CPF}, nil
}
