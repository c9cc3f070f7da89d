package weeklyplan

import (
	"context"

	domain "lifeboard/internal/domain/weeklyplan"
)

// Store persists WeeklyPlan state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.WeeklyPlan, error)
	Latest(ctx context.Context) (domain.WeeklyPlan, error)
	List(ctx context.Context, limit, offset int) ([]domain.WeeklyPlan, error)
	Count(ctx context.Context) (int, error)
	Save(ctx context.Context, p domain.WeeklyPlan) error
	Delete(ctx context.Context, id string) error
}
