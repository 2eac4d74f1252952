package trainingcenter

import (
	"context"
	"database/sql"

	"workoutapi/internal/adapters/storage"
	"workoutapi/internal/domain/registry"
	domain "workoutapi/internal/domain/trainingcenter"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new TrainingCenterStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const selectColumns = "SELECT id, nome, endereco, proprietario FROM centro_treinamento"

func scanOne(row *sql.Row, key string) (domain.TrainingCenter, error) {
	var entity domain.TrainingCenter
	err := row.Scan(&entity.ID, &entity.Name, &entity.Address, &entity.Owner)
	if err == sql.ErrNoRows {
		return domain.TrainingCenter{}, &registry.NotFoundError{Kind: registry.KindTrainingCenter, Key: key}
	}
	return entity, err
}

// GetByID retrieves a TrainingCenter by its ID.
// PRE: id is non-empty
// POST: Returns the entity or registry.NotFoundError
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.TrainingCenter, error) {
	return scanOne(s.db.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id), id)
}

// GetByName retrieves a TrainingCenter by its unique name.
// PRE: nome is non-empty
// POST: Returns the entity or registry.NotFoundError
func (s *SQLiteStore) GetByName(ctx context.Context, nome string) (domain.TrainingCenter, error) {
	return scanOne(s.db.QueryRowContext(ctx, selectColumns+" WHERE nome = ?", nome), nome)
}

// Save persists a TrainingCenter to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update by id)
// A UNIQUE violation on nome surfaces as registry.ConflictError.
func (s *SQLiteStore) Save(ctx context.Context, entity domain.TrainingCenter) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO centro_treinamento (id, nome, endereco, proprietario) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET nome=excluded.nome, endereco=excluded.endereco, proprietario=excluded.proprietario`,
		entity.ID, entity.Name, entity.Address, entity.Owner,
	)
	if storage.IsUniqueViolation(err, "centro_treinamento.nome") {
		return &registry.ConflictError{Kind: registry.KindTrainingCenter, Field: "nome", Value: entity.Name}
	}
	return err
}

// Delete removes a TrainingCenter from the database.
// PRE: id is non-empty
// POST: Entity removed, or registry.NotFoundError if absent
// Deleting a center still referenced by an athlete surfaces as
// registry.ConflictError via the foreign key.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM centro_treinamento WHERE id = ?", id)
	if storage.IsForeignKeyViolation(err) {
		return &registry.ConflictError{Kind: registry.KindTrainingCenter, Field: "id", Value: id}
	}
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &registry.NotFoundError{Kind: registry.KindTrainingCenter, Key: id}
	}
	return nil
}

// List retrieves all TrainingCenters ordered by name.
// POST: Returns all rows; empty slice when the table is empty
func (s *SQLiteStore) List(ctx context.Context) ([]domain.TrainingCenter, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+" ORDER BY nome")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.TrainingCenter
	for rows.Next() {
		var entity domain.TrainingCenter
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.Address, &entity.Owner); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
