package exercise

import (
	"errors"

	"lifeboard/internal/domain/timestamp"
)

// Domain errors
var (
	ErrEmptyName = errors.New("name is required")
)

// Exercise is a catalog entry that workout sets reference.
type Exercise struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`         // e.g. "Barbell bench press"
	MuscleGroup string           `json:"muscle_group"` // e.g. "chest"
	CreatedAt   timestamp.Millis `json:"created_at"`
}

// Validate checks if the Exercise has valid data.
// PRE: Exercise struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Exercise) Validate() error {
	if e.Name == "" {
		return ErrEmptyName
	}
	return nil
}
