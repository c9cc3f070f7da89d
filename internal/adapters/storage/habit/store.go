package habit

import (
	"context"

	domain "lifeboard/internal/domain/habit"
)

// Store persists Habit state and per-day completion logs.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Habit, error)
	List(ctx context.Context) ([]domain.Habit, error)
	Save(ctx context.Context, h domain.Habit) error
	Delete(ctx context.Context, id string) error

	// MarkCompleted upserts the log row for (habitID, date). Calling it twice
	// for the same day still leaves exactly one row.
	MarkCompleted(ctx context.Context, habitID, date string) error

	// Unmark deletes the log row for (habitID, date). Removing a day that was
	// never marked is a no-op success.
	Unmark(ctx context.Context, habitID, date string) error

	ListLogs(ctx context.Context, habitID string) ([]domain.Log, error)
}
