package athlete

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"workoutapi/internal/adapters/storage"
	domain "workoutapi/internal/domain/athlete"
	"workoutapi/internal/domain/registry"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new AthleteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const selectColumns = "SELECT id, created_at, nome, cpf, idade, peso, altura, sexo, categoria_id, centro_treinamento_id FROM atleta"

func scanAthlete(scan func(dest ...any) error) (domain.Athlete, error) {
	var entity domain.Athlete
	var createdAt string
	err := scan(
		&entity.ID,
		&createdAt,
		&entity.Name,
		&entity.CPF,
		&entity.Age,
		&entity.Weight,
		&entity.Height,
		&entity.Sex,
		&entity.CategoryID,
		&entity.TrainingCenterID,
	)
	if err != nil {
		return domain.Athlete{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return domain.Athlete{}, fmt.Errorf("invalid created_at for atleta %s: %w", entity.ID, err)
	}
	entity.CreatedAt = ts
	return entity, nil
}

func (s *SQLiteStore) getOne(ctx context.Context, where, key string) (domain.Athlete, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" WHERE "+where+" LIMIT 1", key)
	entity, err := scanAthlete(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Athlete{}, &registry.NotFoundError{Kind: registry.KindAthlete, Key: key}
	}
	return entity, err
}

// GetByID retrieves an Athlete by its ID.
// PRE: id is non-empty
// POST: Returns the entity or registry.NotFoundError
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Athlete, error) {
	return s.getOne(ctx, "id = ?", id)
}

// GetByName retrieves the first Athlete with the given name.
// Athlete names are not unique; ties resolve to the oldest row, matching
// the original lookup-by-name contract.
// PRE: nome is non-empty
// POST: Returns the entity or registry.NotFoundError
func (s *SQLiteStore) GetByName(ctx context.Context, nome string) (domain.Athlete, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+" WHERE nome = ? ORDER BY created_at LIMIT 1", nome)
	entity, err := scanAthlete(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Athlete{}, &registry.NotFoundError{Kind: registry.KindAthlete, Key: nome}
	}
	return entity, err
}

// GetByCPF retrieves an Athlete by its unique document number.
// PRE: cpf is non-empty
// POST: Returns the entity or registry.NotFoundError
func (s *SQLiteStore) GetByCPF(ctx context.Context, cpf string) (domain.Athlete, error) {
	return s.getOne(ctx, "cpf = ?", cpf)
}

// Save persists an Athlete to the database.
// PRE: entity has been validated, references resolved to existing IDs
// POST: Entity is persisted (insert or update by id)
// A UNIQUE violation on cpf surfaces as registry.ConflictError, the
// backstop for concurrent registrations that both passed the document check.
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Athlete) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO atleta (id, created_at, nome, cpf, idade, peso, altura, sexo, categoria_id, centro_treinamento_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   nome=excluded.nome, cpf=excluded.cpf, idade=excluded.idade,
		   peso=excluded.peso, altura=excluded.altura, sexo=excluded.sexo`,
		entity.ID,
		entity.CreatedAt.UTC().Format(time.RFC3339Nano),
		entity.Name,
		entity.CPF,
		entity.Age,
		entity.Weight,
		entity.Height,
		entity.Sex,
		entity.CategoryID,
		entity.TrainingCenterID,
	)
	if storage.IsUniqueViolation(err, "atleta.cpf") {
		return &registry.ConflictError{Kind: registry.KindAthlete, Field: "cpf", Value: entity.CPF}
	}
	return err
}

// Delete removes an Athlete from the database.
// PRE: id is non-empty
// POST: Entity removed, or registry.NotFoundError if absent
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM atleta WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &registry.NotFoundError{Kind: registry.KindAthlete, Key: id}
	}
	return nil
}

// List retrieves all Athletes ordered by creation time.
// POST: Returns all rows; empty slice when the table is empty
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Athlete, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+" ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Athlete
	for rows.Next() {
		entity, err := scanAthlete(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
