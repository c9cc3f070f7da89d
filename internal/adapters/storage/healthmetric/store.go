package healthmetric

import (
	"context"

	domain "lifeboard/internal/domain/healthmetric"
)

// Store persists HealthMetric state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.HealthMetric, error)
	GetByDate(ctx context.Context, date string) (domain.HealthMetric, error)
	List(ctx context.Context) ([]domain.HealthMetric, error)
	Save(ctx context.Context, m domain.HealthMetric) error
	Delete(ctx context.Context, id string) error
}
