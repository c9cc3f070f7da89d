package task

import (
	"context"

	domain "lifeboard/internal/domain/task"
)

// Store persists Task state, including nested subtasks.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, t domain.Task) error
	Delete(ctx context.Context, id string) error

	// ReplaceSubtasks deletes the task's existing subtasks and inserts the
	// given set in a single transaction. An empty slice removes all children.
	ReplaceSubtasks(ctx context.Context, taskID string, subtasks []domain.Subtask) error
}
