package trainingcenter

import (
	"context"

	domain "workoutapi/internal/domain/trainingcenter"
)

// Store persists TrainingCenter state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.TrainingCenter, error)
	GetByName(ctx context.Context, nome string) (domain.TrainingCenter, error)
	Save(ctx context.Context, value domain.TrainingCenter) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.TrainingCenter, error)
}
