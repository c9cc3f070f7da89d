package content

import (
	"context"

	domain "lifeboard/internal/domain/content"
)

// Store persists content calendar state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	Save(ctx context.Context, i domain.Item) error
	Delete(ctx context.Context, id string) error
}
