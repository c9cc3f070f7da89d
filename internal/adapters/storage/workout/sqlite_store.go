package workout

import (
	"context"
	"database/sql"

	"lifeboard/internal/adapters/storage"
	"lifeboard/internal/domain/timestamp"
	domain "lifeboard/internal/domain/workout"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Workout with its exercise sets.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Workout, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, date, name, notes, created_at FROM workout WHERE id = ?`, id)
	var w domain.Workout
	var date, createdAt int64
	if err := row.Scan(&w.ID, &date, &w.Name, &w.Notes, &createdAt); err != nil {
		return domain.Workout{}, err
	}
	w.Date = timestamp.Millis(date)
	w.CreatedAt = timestamp.Millis(createdAt)

	sets, err := s.listSets(ctx, w.ID)
	if err != nil {
		return domain.Workout{}, err
	}
	w.Sets = sets
	return w, nil
}

// List retrieves a page of workouts, newest date first, sets attached.
// PRE: limit > 0, offset >= 0
// POST: Returns at most limit workouts ordered by date descending
func (s *SQLiteStore) List(ctx context.Context, limit, offset int) ([]domain.Workout, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, name, notes, created_at
		 FROM workout ORDER BY date DESC, created_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []domain.Workout
	for rows.Next() {
		var w domain.Workout
		var date, createdAt int64
		if err := rows.Scan(&w.ID, &date, &w.Name, &w.Notes, &createdAt); err != nil {
			return nil, err
		}
		w.Date = timestamp.Millis(date)
		w.CreatedAt = timestamp.Millis(createdAt)
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range workouts {
		sets, err := s.listSets(ctx, workouts[i].ID)
		if err != nil {
			return nil, err
		}
		workouts[i].Sets = sets
	}
	return workouts, nil
}

// Count returns the total number of workouts, for paging.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM workout`).Scan(&n)
	return n, err
}

// SaveWithSets persists a workout and replaces its exercise sets in one
// transaction. Either all rows land or none do.
// PRE: entity has been validated
// POST: The workout row and exactly the given sets exist, or nothing changed
func (s *SQLiteStore) SaveWithSets(ctx context.Context, w domain.Workout) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO workout (id, date, name, notes, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   date=excluded.date, name=excluded.name, notes=excluded.notes,
		   created_at=excluded.created_at`,
		w.ID, int64(w.Date), w.Name, w.Notes, int64(w.CreatedAt)); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM exercise_set WHERE workout_id = ?`, w.ID); err != nil {
		return err
	}
	for _, set := range w.Sets {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO exercise_set (id, workout_id, exercise_id, reps, weight_kg, position)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			set.ID, w.ID, set.ExerciseID, set.Reps, set.WeightKg, set.Position); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Delete removes a Workout; its sets cascade via the foreign key.
// PRE: id is non-empty
// POST: Returns sql.ErrNoRows when no workout had the given id
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM workout WHERE id = ?`, id)
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

func (s *SQLiteStore) listSets(ctx context.Context, workoutID string) ([]domain.ExerciseSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, workout_id, exercise_id, reps, weight_kg, position
		 FROM exercise_set WHERE workout_id = ? ORDER BY position ASC`, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []domain.ExerciseSet
	for rows.Next() {
		var set domain.ExerciseSet
		if err := rows.Scan(&set.ID, &set.WorkoutID, &set.ExerciseID, &set.Reps, &set.WeightKg, &set.Position); err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

// Ensure interface compliance at compile time.
var _ Store = (*SQLiteStore)(nil)
