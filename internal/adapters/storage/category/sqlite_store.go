package category

import (
	"context"
	"database/sql"

	"workoutapi/internal/adapters/storage"
	domain "workoutapi/internal/domain/category"
	"workoutapi/internal/domain/registry"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new CategoryStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Category by its ID.
// PRE: id is non-empty
// POST: Returns the entity or registry.NotFoundError
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Category, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, nome FROM categoria WHERE id = ?", id)
	var entity domain.Category
	err := row.Scan(&entity.ID, &entity.Name)
	if err == sql.ErrNoRows {
		return domain.Category{}, &registry.NotFoundError{Kind: registry.KindCategory, Key: id}
	}
	return entity, err
}

// GetByName retrieves a Category by its unique name.
// PRE: nome is non-empty
// POST: Returns the entity or registry.NotFoundError
func (s *SQLiteStore) GetByName(ctx context.Context, nome string) (domain.Category, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, nome FROM categoria WHERE nome = ?", nome)
	var entity domain.Category
	err := row.Scan(&entity.ID, &entity.Name)
	if err == sql.ErrNoRows {
		return domain.Category{}, &registry.NotFoundError{Kind: registry.KindCategory, Key: nome}
	}
	return entity, err
}

// Save persists a Category to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update by id)
// A UNIQUE violation on nome surfaces as registry.ConflictError, the
// backstop for concurrent creations that both passed the name check.
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Category) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO categoria (id, nome) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET nome=excluded.nome",
		entity.ID, entity.Name,
	)
	if storage.IsUniqueViolation(err, "categoria.nome") {
		return &registry.ConflictError{Kind: registry.KindCategory, Field: "nome", Value: entity.Name}
	}
	return err
}

// Delete removes a Category from the database.
// PRE: id is non-empty
// POST: Entity removed, or registry.NotFoundError if absent
// Deleting a category still referenced by an athlete is rejected by the
// foreign key and surfaces as registry.ConflictError.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM categoria WHERE id = ?", id)
	if storage.IsForeignKeyViolation(err) {
		return &registry.ConflictError{Kind: registry.KindCategory, Field: "id", Value: id}
	}
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &registry.NotFoundError{Kind: registry.KindCategory, Key: id}
	}
	return nil
}

// List retrieves all Categories ordered by name.
// POST: Returns all rows; empty slice when the table is empty
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, nome FROM categoria ORDER BY nome")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Category
	for rows.Next() {
		var entity domain.Category
		if err := rows.Scan(&entity.ID, &entity.Name); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
