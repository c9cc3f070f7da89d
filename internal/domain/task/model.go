package task

import (
	"errors"

	"lifeboard/internal/domain/timestamp"
)

// Max length constants for user-editable fields.
const (
	MaxTitleLength = 200
)

// Domain errors
var (
	ErrEmptyTitle   = errors.New("title is required")
	ErrTitleTooLong = errors.New("title cannot exceed 200 characters")
)

// Task represents a single to-do item, optionally broken into subtasks.
type Task struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Notes     string            `json:"notes"`
	Done      bool              `json:"done"`
	DueDate   *timestamp.Millis `json:"due_date"` // nil when no due date is set
	CreatedAt timestamp.Millis  `json:"created_at"`
	UpdatedAt timestamp.Millis  `json:"updated_at"`
	Subtasks  []Subtask         `json:"subtasks"`
}

// Subtask is a child item of a Task. A task owns its subtasks; deleting the
// task cascades to them, and a PUT that supplies a subtask list replaces the
// whole set atomically.
type Subtask struct {
	ID       string `json:"id"`
	TaskID   string `json:"task_id"`
	Title    string `json:"title"`
	Done     bool   `json:"done"`
	Position int    `json:"position"`
}

// Validate checks if the Task has valid data.
// PRE: Task struct is populated
// POST: Returns nil if valid, error otherwise
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}
	if len(t.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	for i := range t.Subtasks {
		if err := t.Subtasks[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the Subtask has valid data.
// PRE: Subtask struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Subtask) Validate() error {
	if s.Title == "" {
		return ErrEmptyTitle
	}
	if len(s.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
