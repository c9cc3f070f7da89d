package script

import (
	"context"

	domain "lifeboard/internal/domain/script"
)

// Store persists Script state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Script, error)
	List(ctx context.Context) ([]domain.Script, error)
	Save(ctx context.Context, sc domain.Script) error
	Delete(ctx context.Context, id string) error
}
