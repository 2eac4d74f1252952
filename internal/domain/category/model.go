package category

import (
	"errors"
	"fmt"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 10
)

// Domain errors
var (
	ErrEmptyName = errors.New("categoria name cannot be empty")
)

// Category is a training-category taxonomy entry. Immutable once created:
// the API exposes no update operation for it.
type Category struct {
	ID   string
	Name string
}

// Validate checks if the Category has valid data.
// PRE: Category struct is populated
// POST: Returns nil if valid, error otherwise
// INVARIANT: Name is unique across all categories (enforced by store)
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if len(c.Name) > MaxNameLength {
		return fmt.Errorf("categoria name cannot exceed %d characters", MaxNameLength)
	}
	return nil
}
