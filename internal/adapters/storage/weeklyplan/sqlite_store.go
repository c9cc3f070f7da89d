package weeklyplan

import (
	"context"
	"database/sql"

	"lifeboard/internal/adapters/storage"
	"lifeboard/internal/domain/timestamp"
	domain "lifeboard/internal/domain/weeklyplan"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a WeeklyPlan by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.WeeklyPlan, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, week_of, focus, goals, wins, created_at, updated_at
		 FROM weekly_plan WHERE id = ?`, id)
	return scanPlan(row)
}

// Latest retrieves the plan with the most recent week.
// PRE: none
// POST: Returns the newest plan or sql.ErrNoRows when no plans exist
func (s *SQLiteStore) Latest(ctx context.Context) (domain.WeeklyPlan, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, week_of, focus, goals, wins, created_at, updated_at
		 FROM weekly_plan ORDER BY week_of DESC LIMIT 1`)
	return scanPlan(row)
}

// List retrieves a page of plans, newest week first.
// PRE: limit > 0, offset >= 0
// POST: Returns at most limit plans ordered by week_of descending
func (s *SQLiteStore) List(ctx context.Context, limit, offset int) ([]domain.WeeklyPlan, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, week_of, focus, goals, wins, created_at, updated_at
		 FROM weekly_plan ORDER BY week_of DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []domain.WeeklyPlan
	for rows.Next() {
		var p domain.WeeklyPlan
		var weekOf, createdAt, updatedAt int64
		if err := rows.Scan(&p.ID, &weekOf, &p.Focus, &p.Goals, &p.Wins, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		p.WeekOf = timestamp.Millis(weekOf)
		p.CreatedAt = timestamp.Millis(createdAt)
		p.UpdatedAt = timestamp.Millis(updatedAt)
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// Count returns the total number of plans, for paging.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM weekly_plan`).Scan(&n)
	return n, err
}

// Save persists a WeeklyPlan to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, p domain.WeeklyPlan) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO weekly_plan (id, week_of, focus, goals, wins, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   week_of=excluded.week_of, focus=excluded.focus, goals=excluded.goals,
		   wins=excluded.wins, created_at=excluded.created_at,
		   updated_at=excluded.updated_at`,
		p.ID, int64(p.WeekOf), p.Focus, p.Goals, p.Wins,
		int64(p.CreatedAt), int64(p.UpdatedAt))
	return err
}

// Delete removes a WeeklyPlan.
// PRE: id is non-empty
// POST: Returns sql.ErrNoRows when no plan had the given id
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM weekly_plan WHERE id = ?`, id)
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

func scanPlan(row *sql.Row) (domain.WeeklyPlan, error) {
	var p domain.WeeklyPlan
	var weekOf, createdAt, updatedAt int64
	err := row.Scan(&p.ID, &weekOf, &p.Focus, &p.Goals, &p.Wins, &createdAt, &updatedAt)
	if err != nil {
		return domain.WeeklyPlan{}, err
	}
	p.WeekOf = timestamp.Millis(weekOf)
	p.CreatedAt = timestamp.Millis(createdAt)
	p.UpdatedAt = timestamp.Millis(updatedAt)
	return p, nil
}

// Ensure interface compliance at compile time.
var _ Store = (*SQLiteStore)(nil)
