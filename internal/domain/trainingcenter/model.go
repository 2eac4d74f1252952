package trainingcenter

import (
	"errors"
	"fmt"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength    = 20
	MaxAddressLength = 60
	MaxOwnerLength   = 30
)

// Domain errors
var (
	ErrEmptyName    = errors.New("centro de treinamento name cannot be empty")
	ErrEmptyAddress = errors.New("centro de treinamento address cannot be empty")
	ErrEmptyOwner   = errors.New("centro de treinamento owner cannot be empty")
)

// TrainingCenter is a training facility. Name, address and owner are
// mutable via partial update.
type TrainingCenter struct {
	ID      string
	Name    string
	Address string
	Owner   string
}

// Validate checks if the TrainingCenter has valid data.
// PRE: TrainingCenter struct is populated
// POST: Returns nil if valid, error otherwise
// INVARIANT: Name is unique across all training centers (enforced by store)
func (t *TrainingCenter) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if len(t.Name) > MaxNameLength {
		return fmt.Errorf("centro de treinamento name cannot exceed %d characters", MaxNameLength)
	}
	if strings.TrimSpace(t.Address) == "" {
		return ErrEmptyAddress
	}
	if len(t.Address) > MaxAddressLength {
		return fmt.Errorf("centro de treinamento address cannot exceed %d characters", MaxAddressLength)
	}
	if strings.TrimSpace(t.Owner) == "" {
		return ErrEmptyOwner
	}
	if len(t.Owner) > MaxOwnerLength {
		return fmt.Errorf("centro de treinamento owner cannot exceed %d characters", MaxOwnerLength)
	}
	return nil
}
