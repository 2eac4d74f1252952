package projections

import (
	"context"

	domainAthlete "workoutapi/internal/domain/athlete"
	domainCategory "workoutapi/internal/domain/category"
	domainTrainingCenter "workoutapi/internal/domain/trainingcenter"
)

// AthleteStore interface for athlete queries.
type AthleteStore interface {
	GetByName(ctx context.Context, nome string) (domainAthlete.Athlete, error)
	List(ctx context.Context) ([]domainAthlete.Athlete, error)
}

// CategoryStore interface for category queries.
type CategoryStore interface {
	List(ctx context.Context) ([]domainCategory.Category, error)
}

// TrainingCenterStore interface for training-center queries.
type TrainingCenterStore interface {
	List(ctx context.Context) ([]domainTrainingCenter.TrainingCenter, error)
}
