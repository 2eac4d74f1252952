package category

import (
	"context"

	domain "workoutapi/internal/domain/category"
)

// Store persists Category state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Category, error)
	GetByName(ctx context.Context, nome string) (domain.Category, error)
	Save(ctx context.Context, value domain.Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Category, error)
}
