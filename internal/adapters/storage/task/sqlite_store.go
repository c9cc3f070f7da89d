package task

import (
	"context"
	"database/sql"

	"lifeboard/internal/adapters/storage"
	domain "lifeboard/internal/domain/task"
	"lifeboard/internal/domain/timestamp"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Task with its subtasks.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, notes, done, due_date, created_at, updated_at
		 FROM task WHERE id = ?`, id)
	t, err := scanTask(row)
	if err != nil {
		return domain.Task{}, err
	}
	subs, err := s.listSubtasks(ctx, t.ID)
	if err != nil {
		return domain.Task{}, err
	}
	t.Subtasks = subs
	return t, nil
}

// List retrieves all tasks ordered by due date ascending, undated tasks last.
// Subtasks are attached to each task.
// PRE: none
// POST: Returns all tasks with children populated
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, notes, done, due_date, created_at, updated_at
		 FROM task ORDER BY due_date IS NULL, due_date ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTaskRows(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tasks {
		subs, err := s.listSubtasks(ctx, tasks[i].ID)
		if err != nil {
			return nil, err
		}
		tasks[i].Subtasks = subs
	}
	return tasks, nil
}

// Save persists a Task to the database. Subtasks are not written here — use
// ReplaceSubtasks so the child set always changes atomically.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, t domain.Task) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO task (id, title, notes, done, due_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title=excluded.title, notes=excluded.notes, done=excluded.done,
		   due_date=excluded.due_date, created_at=excluded.created_at,
		   updated_at=excluded.updated_at`,
		t.ID, t.Title, t.Notes, t.Done, nullableMillis(t.DueDate),
		int64(t.CreatedAt), int64(t.UpdatedAt))
	return err
}

// Delete removes a Task; subtasks cascade via the foreign key.
// PRE: id is non-empty
// POST: Returns sql.ErrNoRows when no task had the given id
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM task WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ReplaceSubtasks swaps the task's subtask set in one transaction.
// PRE: taskID refers to an existing task; subtasks have been validated
// POST: Exactly the given subtasks exist for the task, or nothing changed
func (s *SQLiteStore) ReplaceSubtasks(ctx context.Context, taskID string, subtasks []domain.Subtask) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM subtask WHERE task_id = ?`, taskID); err != nil {
		return err
	}
	for _, sub := range subtasks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO subtask (id, task_id, title, done, position) VALUES (?, ?, ?, ?, ?)`,
			sub.ID, taskID, sub.Title, sub.Done, sub.Position); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) listSubtasks(ctx context.Context, taskID string) ([]domain.Subtask, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, task_id, title, done, position
		 FROM subtask WHERE task_id = ? ORDER BY position ASC`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subtask
	for rows.Next() {
		var sub domain.Subtask
		if err := rows.Scan(&sub.ID, &sub.TaskID, &sub.Title, &sub.Done, &sub.Position); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func scanTask(row *sql.Row) (domain.Task, error) {
	var t domain.Task
	var dueDate sql.NullInt64
	var createdAt, updatedAt int64
	err := row.Scan(&t.ID, &t.Title, &t.Notes, &t.Done, &dueDate, &createdAt, &updatedAt)
	if err != nil {
		return domain.Task{}, err
	}
	applyTaskTimes(&t, dueDate, createdAt, updatedAt)
	return t, nil
}

func scanTaskRows(rows *sql.Rows) (domain.Task, error) {
	var t domain.Task
	var dueDate sql.NullInt64
	var createdAt, updatedAt int64
	err := rows.Scan(&t.ID, &t.Title, &t.Notes, &t.Done, &dueDate, &createdAt, &updatedAt)
	if err != nil {
		return domain.Task{}, err
	}
	applyTaskTimes(&t, dueDate, createdAt, updatedAt)
	return t, nil
}

func applyTaskTimes(t *domain.Task, dueDate sql.NullInt64, createdAt, updatedAt int64) {
	if dueDate.Valid {
		m := timestamp.Millis(dueDate.Int64)
		t.DueDate = &m
	}
	t.CreatedAt = timestamp.Millis(createdAt)
	t.UpdatedAt = timestamp.Millis(updatedAt)
}

func nullableMillis(m *timestamp.Millis) sql.NullInt64 {
	if m == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*m), Valid: true}
}

// Ensure interface compliance at compile time.
var _ Store = (*SQLiteStore)(nil)
