package exercise

import (
	"context"
	"database/sql"

	"lifeboard/internal/adapters/storage"
	domain "lifeboard/internal/domain/exercise"
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

// GetByID retrieves an Exercise by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Exercise, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, muscle_group, created_at FROM exercise WHERE id = ?`, id)
	var e domain.Exercise
	var createdAt int64
	if err := row.Scan(&e.ID, &e.Name, &e.MuscleGroup, &createdAt); err != nil {
		return domain.Exercise{}, err
	}
	e.CreatedAt = timestamp.Millis(createdAt)
	return e, nil
}

// List retrieves all exercises ordered by name.
// PRE: none
// POST: Returns exercises in ascending name order
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Exercise, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, muscle_group, created_at FROM exercise ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []domain.Exercise
	for rows.Next() {
		var e domain.Exercise
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroup, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt = timestamp.Millis(createdAt)
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// Save persists an Exercise to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, e domain.Exercise) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exercise (id, name, muscle_group, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, muscle_group=excluded.muscle_group,
		   created_at=excluded.created_at`,
		e.ID, e.Name, e.MuscleGroup, int64(e.CreatedAt))
	return err
}

// Delete removes an Exercise.
// PRE: id is non-empty
// POST: Returns sql.ErrNoRows when no exercise had the given id
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM exercise WHERE id = ?`, id)
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

// Ensure interface compliance at compile time.
var _ Store = (*SQLiteStore)(nil)
