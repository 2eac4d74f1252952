package athlete

import (
	"context"

	domain "workoutapi/internal/domain/athlete"
)

// Store persists Athlete state.
//
// Athletes are looked up by name at the API boundary (a deliberate contract
// inherited from the original service), so GetByName is the primary read
// path; GetByCPF serves the document-uniqueness check.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Athlete, error)
	GetByName(ctx context.Context, nome string) (domain.Athlete, error)
	GetByCPF(ctx context.Context, cpf string) (domain.Athlete, error)
	Save(ctx context.Context, value domain.Athlete) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Athlete, error)
}
