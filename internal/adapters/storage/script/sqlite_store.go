package script

import (
	"context"
	"database/sql"

	"lifeboard/internal/adapters/storage"
	domain "lifeboard/internal/domain/script"
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

// GetByID retrieves a Script by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Script, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, hook, body, status, created_at, updated_at
		 FROM script WHERE id = ?`, id)
	var sc domain.Script
	var createdAt, updatedAt int64
	if err := row.Scan(&sc.ID, &sc.Title, &sc.Hook, &sc.Body, &sc.Status, &createdAt, &updatedAt); err != nil {
		return domain.Script{}, err
	}
	sc.CreatedAt = timestamp.Millis(createdAt)
	sc.UpdatedAt = timestamp.Millis(updatedAt)
	return sc, nil
}

// List retrieves all scripts, newest first.
// PRE: none
// POST: Returns scripts ordered by creation time descending
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Script, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, hook, body, status, created_at, updated_at
		 FROM script ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scripts []domain.Script
	for rows.Next() {
		var sc domain.Script
		var createdAt, updatedAt int64
		if err := rows.Scan(&sc.ID, &sc.Title, &sc.Hook, &sc.Body, &sc.Status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		sc.CreatedAt = timestamp.Millis(createdAt)
		sc.UpdatedAt = timestamp.Millis(updatedAt)
		scripts = append(scripts, sc)
	}
	return scripts, rows.Err()
}

// Save persists a Script to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, sc domain.Script) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO script (id, title, hook, body, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title=excluded.title, hook=excluded.hook, body=excluded.body,
		   status=excluded.status, created_at=excluded.created_at,
		   updated_at=excluded.updated_at`,
		sc.ID, sc.Title, sc.Hook, sc.Body, sc.Status,
		int64(sc.CreatedAt), int64(sc.UpdatedAt))
	return err
}

// Delete removes a Script.
// PRE: id is non-empty
// POST: Returns sql.ErrNoRows when no script had the given id
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM script WHERE id = ?`, id)
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
