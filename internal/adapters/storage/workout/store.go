package workout

import (
	"context"

	domain "lifeboard/internal/domain/workout"
)

// Store persists Workout state. SaveWithSets writes a workout and its
// exercise sets atomically.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Workout, error)
	List(ctx context.Context, limit, offset int) ([]domain.Workout, error)
	Count(ctx context.Context) (int, error)
	SaveWithSets(ctx context.Context, w domain.Workout) error
	Delete(ctx context.Context, id string) error
}
