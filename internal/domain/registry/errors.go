package registry

import (
	"errors"
	"fmt"
)

// Kind identifies an entity kind in error values.
type Kind string

// Entity kinds managed by the registry.
const (
	KindCategory       Kind = "categoria"
	KindTrainingCenter Kind = "centro_treinamento"
	KindAthlete        Kind = "atleta"
)

// NotFoundError reports a lookup whose key matched no row.
type NotFoundError struct {
	Kind Kind
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

// ConflictError reports a uniqueness violation on a field.
type ConflictError struct {
	Kind  Kind
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists with %s: %s", e.Kind, e.Field, e.Value)
}

// UnresolvedReferenceError reports an athlete referencing a category or
// training center that does not exist.
type UnresolvedReferenceError struct {
	Kind Kind
	Name string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("%s reference not found: %s", e.Kind, e.Name)
}

// PersistenceError wraps a storage failure not otherwise classified.
// Callers surface it as a generic server-side failure without the
// underlying detail.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// IsUnresolvedReference reports whether err is an UnresolvedReferenceError.
func IsUnresolvedReference(err error) bool {
	var e *UnresolvedReferenceError
	return errors.As(err, &e)
}
