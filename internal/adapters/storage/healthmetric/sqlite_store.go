package healthmetric

import (
	"context"
	"database/sql"

	"lifeboard/internal/adapters/storage"
	domain "lifeboard/internal/domain/healthmetric"
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

// GetByID retrieves a HealthMetric by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.HealthMetric, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, date, weight_kg, sleep_hours, mood, notes, created_at
		 FROM health_metric WHERE id = ?`, id)
	return scanMetric(row)
}

// GetByDate retrieves the metric entry for a calendar date.
// PRE: date is YYYY-MM-DD
// POST: Returns the entity or sql.ErrNoRows when the day has no entry
func (s *SQLiteStore) GetByDate(ctx context.Context, date string) (domain.HealthMetric, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, date, weight_kg, sleep_hours, mood, notes, created_at
		 FROM health_metric WHERE date = ?`, date)
	return scanMetric(row)
}

// List retrieves all metric entries, newest date first.
// PRE: none
// POST: Returns entries ordered by date descending
func (s *SQLiteStore) List(ctx context.Context) ([]domain.HealthMetric, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, weight_kg, sleep_hours, mood, notes, created_at
		 FROM health_metric ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metrics []domain.HealthMetric
	for rows.Next() {
		var m domain.HealthMetric
		var createdAt int64
		if err := rows.Scan(&m.ID, &m.Date, &m.WeightKg, &m.SleepHours, &m.Mood, &m.Notes, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = timestamp.Millis(createdAt)
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

// Save persists a HealthMetric. The date column is unique, so saving a second
// entry for the same day replaces the earlier values.
// PRE: entity has been validated
// POST: Exactly one entry exists for the entity's date
func (s *SQLiteStore) Save(ctx context.Context, m domain.HealthMetric) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO health_metric (id, date, weight_kg, sleep_hours, mood, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
		   weight_kg=excluded.weight_kg, sleep_hours=excluded.sleep_hours,
		   mood=excluded.mood, notes=excluded.notes`,
		m.ID, m.Date, m.WeightKg, m.SleepHours, m.Mood, m.Notes, int64(m.CreatedAt))
	return err
}

// Delete removes a HealthMetric.
// PRE: id is non-empty
// POST: Returns sql.ErrNoRows when no entry had the given id
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM health_metric WHERE id = ?`, id)
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

func scanMetric(row *sql.Row) (domain.HealthMetric, error) {
	var m domain.HealthMetric
	var createdAt int64
	err := row.Scan(&m.ID, &m.Date, &m.WeightKg, &m.SleepHours, &m.Mood, &m.Notes, &createdAt)
	if err != nil {
		return domain.HealthMetric{}, err
	}
	m.CreatedAt = timestamp.Millis(createdAt)
	return m, nil
}

// Ensure interface compliance at compile time.
var _ Store = (*SQLiteStore)(nil)
