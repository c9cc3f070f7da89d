package content

import (
	"context"
	"database/sql"

	"lifeboard/internal/adapters/storage"
	domain "lifeboard/internal/domain/content"
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

// GetByID retrieves a content Item by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, platform, status, send_date, created_at, updated_at
		 FROM content_item WHERE id = ?`, id)
	var i domain.Item
	var sendDate sql.NullInt64
	var createdAt, updatedAt int64
	if err := row.Scan(&i.ID, &i.Title, &i.Platform, &i.Status, &sendDate, &createdAt, &updatedAt); err != nil {
		return domain.Item{}, err
	}
	applyItemTimes(&i, sendDate, createdAt, updatedAt)
	return i, nil
}

// List retrieves all items ordered by send date ascending, unscheduled last.
// PRE: none
// POST: Returns all items, soonest send date first
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, platform, status, send_date, created_at, updated_at
		 FROM content_item ORDER BY send_date IS NULL, send_date ASC, created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var i domain.Item
		var sendDate sql.NullInt64
		var createdAt, updatedAt int64
		if err := rows.Scan(&i.ID, &i.Title, &i.Platform, &i.Status, &sendDate, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		applyItemTimes(&i, sendDate, createdAt, updatedAt)
		items = append(items, i)
	}
	return items, rows.Err()
}

// Save persists an Item to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, i domain.Item) error {
	var sendDate sql.NullInt64
	if i.SendDate != nil {
		sendDate = sql.NullInt64{Int64: int64(*i.SendDate), Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO content_item (id, title, platform, status, send_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title=excluded.title, platform=excluded.platform, status=excluded.status,
		   send_date=excluded.send_date, created_at=excluded.created_at,
		   updated_at=excluded.updated_at`,
		i.ID, i.Title, i.Platform, i.Status, sendDate,
		int64(i.CreatedAt), int64(i.UpdatedAt))
	return err
}

// Delete removes an Item.
// PRE: id is non-empty
// POST: Returns sql.ErrNoRows when no item had the given id
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM content_item WHERE id = ?`, id)
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

func applyItemTimes(i *domain.Item, sendDate sql.NullInt64, createdAt, updatedAt int64) {
	if sendDate.Valid {
		m := timestamp.Millis(sendDate.Int64)
		i.SendDate = &m
	}
	i.CreatedAt = timestamp.Millis(createdAt)
	i.UpdatedAt = timestamp.Millis(updatedAt)
}

// Ensure interface compliance at compile time.
var _ Store = (*SQLiteStore)(nil)
