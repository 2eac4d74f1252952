package athlete

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength     = 50
	MaxDocumentLength = 11
)

// Domain errors
var (
	ErrEmptyName         = errors.New("atleta name cannot be empty")
	ErrEmptyCPF          = errors.New("atleta cpf cannot be empty")
	ErrInvalidAge        = errors.New("atleta age must be positive")
	ErrInvalidWeight     = errors.New("atleta weight must be positive")
	ErrInvalidHeight     = errors.New("atleta height must be positive")
	ErrInvalidSex        = errors.New("atleta sex must be a single character")
	ErrMissingCategory   = errors.New("atleta category reference cannot be empty")
	ErrMissingCenter     = errors.New("atleta training center reference cannot be empty")
)

// Athlete is a registered athlete. CategoryID and TrainingCenterID are
// resolved from names at registration time and immutable afterwards.
type Athlete struct {
	ID        string
	CreatedAt time.Time
	Name      string
	CPF       string
	Age       int
	Weight    float64
	Height    float64
	Sex       string

	CategoryID       string
	TrainingCenterID string
}

// Validate checks if the Athlete has valid data.
// PRE: Athlete struct is populated, references already resolved to IDs
// POST: Returns nil if valid, error otherwise
// INVARIANT: CPF is unique across all athletes (enforced by store)
func (a *Athlete) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if len(a.Name) > MaxNameLength {
		return fmt.Errorf("atleta name cannot exceed %d characters", MaxNameLength)
	}
	if strings.TrimSpace(a.CPF) == "" {
		return ErrEmptyCPF
	}
	if len(a.CPF) > MaxDocumentLength {
		return fmt.Errorf("atleta cpf cannot exceed %d characters", MaxDocumentLength)
	}
	if a.Age <= 0 {
		return ErrInvalidAge
	}
	if a.Weight <= 0 {
		return ErrInvalidWeight
	}
	if a.Height <= 0 {
		return ErrInvalidHeight
	}
	if len(a.Sex) != 1 {
		return ErrInvalidSex
	}
	if a.CategoryID == "" {
		return ErrMissingCategory
	}
	if a.TrainingCenterID == "" {
		return ErrMissingCenter
	}
	return nil
}
