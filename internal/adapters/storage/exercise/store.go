package exercise

import (
	"context"

	domain "lifeboard/internal/domain/exercise"
)

// Store persists Exercise state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
	Save(ctx context.Context, e domain.Exercise) error
	Delete(ctx context.Context, id string) error
}
