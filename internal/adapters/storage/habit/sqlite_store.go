package habit

import (
	"context"
	"database/sql"

	"lifeboard/internal/adapters/storage"
	domain "lifeboard/internal/domain/habit"
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

// GetByID retrieves a Habit with its logs.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Habit, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, color, created_at FROM habit WHERE id = ?`, id)
	var h domain.Habit
	var createdAt int64
	if err := row.Scan(&h.ID, &h.Name, &h.Color, &createdAt); err != nil {
		return domain.Habit{}, err
	}
	h.CreatedAt = timestamp.Millis(createdAt)
	logs, err := s.ListLogs(ctx, h.ID)
	if err != nil {
		return domain.Habit{}, err
	}
	h.Logs = logs
	return h, nil
}

// List retrieves all habits with their logs, oldest habit first.
// PRE: none
// POST: Returns all habits with Logs populated
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Habit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, color, created_at FROM habit ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []domain.Habit
	for rows.Next() {
		var h domain.Habit
		var createdAt int64
		if err := rows.Scan(&h.ID, &h.Name, &h.Color, &createdAt); err != nil {
			return nil, err
		}
		h.CreatedAt = timestamp.Millis(createdAt)
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range habits {
		logs, err := s.ListLogs(ctx, habits[i].ID)
		if err != nil {
			return nil, err
		}
		habits[i].Logs = logs
	}
	return habits, nil
}

// Save persists a Habit to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, h domain.Habit) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO habit (id, name, color, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, color=excluded.color, created_at=excluded.created_at`,
		h.ID, h.Name, h.Color, int64(h.CreatedAt))
	return err
}

// Delete removes a Habit; its logs cascade via the foreign key.
// PRE: id is non-empty
// POST: Returns sql.ErrNoRows when no habit had the given id
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM habit WHERE id = ?`, id)
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

// MarkCompleted records a completed day. The (habit_id, date) primary key
// makes this a true upsert: repeats leave a single row.
// PRE: habitID refers to an existing habit; date is YYYY-MM-DD
// POST: Exactly one log row exists for (habitID, date)
func (s *SQLiteStore) MarkCompleted(ctx context.Context, habitID, date string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO habit_log (habit_id, date) VALUES (?, ?)
		 ON CONFLICT(habit_id, date) DO NOTHING`,
		habitID, date)
	return err
}

// Unmark removes a completed day. Absent rows are left alone — an unmarked
// day is already in the desired state.
// PRE: habitID and date are non-empty
// POST: No log row exists for (habitID, date)
func (s *SQLiteStore) Unmark(ctx context.Context, habitID, date string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM habit_log WHERE habit_id = ? AND date = ?`, habitID, date)
	return err
}

// ListLogs retrieves a habit's completion logs ordered by date.
// PRE: habitID is non-empty
// POST: Returns the logs, oldest first
func (s *SQLiteStore) ListLogs(ctx context.Context, habitID string) ([]domain.Log, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT habit_id, date FROM habit_log WHERE habit_id = ? ORDER BY date ASC`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.Log
	for rows.Next() {
		var l domain.Log
		if err := rows.Scan(&l.HabitID, &l.Date); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// Ensure interface compliance at compile time.
var _ Store = (*SQLiteStore)(nil)
