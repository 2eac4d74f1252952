package storage

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations holds one SQL script per schema version, applied in order.
// Version N is migrations[N-1]. Released scripts are never edited; schema
// changes append a new entry.
var migrations = []string{
	// v1: initial schema. UNIQUE constraints on categoria.nome,
	// centro_treinamento.nome and atleta.cpf are the storage-layer backstop
	// for the non-atomic check-then-insert sequence in the orchestrators.
	`
	CREATE TABLE categoria (
		id TEXT PRIMARY KEY,
		nome TEXT NOT NULL UNIQUE
	);

	CREATE TABLE centro_treinamento (
		id TEXT PRIMARY KEY,
		nome TEXT NOT NULL UNIQUE,
		endereco TEXT NOT NULL,
		proprietario TEXT NOT NULL
	);

	CREATE TABLE atleta (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		nome TEXT NOT NULL,
		cpf TEXT NOT NULL UNIQUE,
		idade INTEGER NOT NULL,
		peso REAL NOT NULL,
		altura REAL NOT NULL,
		sexo TEXT NOT NULL,
		categoria_id TEXT NOT NULL REFERENCES categoria(id),
		centro_treinamento_id TEXT NOT NULL REFERENCES centro_treinamento(id)
	);

	CREATE INDEX idx_atleta_nome ON atleta(nome);
	`,
}

// LatestSchemaVersion returns the schema version after all migrations.
func LatestSchemaVersion() int {
	return len(migrations)
}

// SchemaVersion reads the current schema version from the database.
// PRE: db is a valid database connection
// POST: Returns 0 for a fresh database, the stored version otherwise
func SchemaVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)"); err != nil {
		return 0, fmt.Errorf("failed to create schema_version table: %w", err)
	}
	var version int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err == sql.ErrNoRows {
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (0)"); err != nil {
			return 0, fmt.Errorf("failed to initialize schema_version: %w", err)
		}
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// MigrateDB applies all pending migrations.
// PRE: db is a valid database connection
// POST: Schema is at LatestSchemaVersion; each step runs in its own transaction
func MigrateDB(db *sql.DB) error {
	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}

	for v := current + 1; v <= len(migrations); v++ {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", v, err)
		}
		if _, err := tx.Exec(migrations[v-1]); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", v, err)
		}
		if _, err := tx.Exec("UPDATE schema_version SET version = ?", v); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", v, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", v, err)
		}
	}
	return nil
}

// IsUniqueViolation reports whether err is a sqlite UNIQUE constraint
// failure on the given table.column.
func IsUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}

// IsForeignKeyViolation reports whether err is a sqlite FOREIGN KEY
// constraint failure (e.g. deleting a row still referenced by an athlete).
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
