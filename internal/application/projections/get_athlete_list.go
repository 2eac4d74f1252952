package projections

import (
	"context"
)

// AthleteListItem is the listing-shaped athlete representation: name plus
// resolved category and training-center display names.
type AthleteListItem struct {
	Nome              string
	Categoria         string
	CentroTreinamento string
}

// GetAthleteListResult carries the query result.
type GetAthleteListResult struct {
	Athletes []AthleteListItem
}

// GetAthleteListDeps holds dependencies for GetAthleteList.
type GetAthleteListDeps struct {
	AthleteStore        AthleteStore
	CategoryStore       CategoryStore
	TrainingCenterStore TrainingCenterStore
}

// QueryGetAthleteList retrieves all athletes with their references
// resolved to display names.
// POST: One item per athlete, in store order; a dangling reference (should
// not occur under the restrict delete policy) yields an empty name rather
// than an error
func QueryGetAthleteList(ctx context.Context, deps GetAthleteListDeps) (GetAthleteListResult, error) {
	athletes, err := deps.AthleteStore.List(ctx)
	if err != nil {
		return GetAthleteListResult{}, err
	}

	categories, err := deps.CategoryStore.List(ctx)
	if err != nil {
		return GetAthleteListResult{}, err
	}
	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	centers, err := deps.TrainingCenterStore.List(ctx)
	if err != nil {
		return GetAthleteListResult{}, err
	}
	centerNames := make(map[string]string, len(centers))
	for _, t := range centers {
		centerNames[t.ID] = t.Name
	}

	result := make([]AthleteListItem, 0, len(athletes))
	for _, a := range athletes {
		result = append(result, AthleteListItem{
			Nome:              a.Name,
			Categoria:         categoryNames[a.CategoryID],
			CentroTreinamento: centerNames[a.TrainingCenterID],
		})
	}
	return GetAthleteListResult{Athletes: result}, nil
}
