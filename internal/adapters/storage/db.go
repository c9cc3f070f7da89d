package storage

import (
	"database/sql"
	"fmt"
)

// migrations holds one SQL script per schema version, applied in order.
// Never edit a shipped migration — append a new one.
var migrations = []string{
	// v1: initial schema
	`
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);

	CREATE TABLE IF NOT EXISTS task (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		done INTEGER NOT NULL DEFAULT 0,
		due_date INTEGER,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS subtask (
		id TEXT PRIMARY KEY,
		task_id TEXT NOT NULL,
		title TEXT NOT NULL,
		done INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (task_id) REFERENCES task(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS habit (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '#F9B232',
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS habit_log (
		habit_id TEXT NOT NULL,
		date TEXT NOT NULL,
		PRIMARY KEY (habit_id, date),
		FOREIGN KEY (habit_id) REFERENCES habit(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS health_metric (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL UNIQUE,
		weight_kg REAL NOT NULL DEFAULT 0,
		sleep_hours REAL NOT NULL DEFAULT 0,
		mood INTEGER NOT NULL DEFAULT 0,
		notes TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS exercise (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		muscle_group TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS workout (
		id TEXT PRIMARY KEY,
		date INTEGER NOT NULL,
		name TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS exercise_set (
		id TEXT PRIMARY KEY,
		workout_id TEXT NOT NULL,
		exercise_id TEXT NOT NULL,
		reps INTEGER NOT NULL,
		weight_kg REAL NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (workout_id) REFERENCES workout(id) ON DELETE CASCADE,
		FOREIGN KEY (exercise_id) REFERENCES exercise(id)
	);

	CREATE TABLE IF NOT EXISTS weekly_plan (
		id TEXT PRIMARY KEY,
		week_of INTEGER NOT NULL,
		focus TEXT NOT NULL,
		goals TEXT NOT NULL DEFAULT '',
		wins TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS content_item (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		platform TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'idea',
		send_date INTEGER,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS script (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		hook TEXT NOT NULL DEFAULT '',
		body TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'idea',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`,
	// v2: indexes for the hot list queries
	`
	CREATE INDEX IF NOT EXISTS idx_subtask_task ON subtask(task_id, position);
	CREATE INDEX IF NOT EXISTS idx_habit_log_habit ON habit_log(habit_id, date);
	CREATE INDEX IF NOT EXISTS idx_exercise_set_workout ON exercise_set(workout_id, position);
	CREATE INDEX IF NOT EXISTS idx_workout_date ON workout(date DESC);
	CREATE INDEX IF NOT EXISTS idx_weekly_plan_week ON weekly_plan(week_of DESC);
	`,
}

// LatestSchemaVersion returns the schema version this binary expects.
// PRE: none
// POST: returns the number of known migrations
func LatestSchemaVersion() int {
	return len(migrations)
}

// MigrateDB brings the database schema up to the latest version.
// Each pending migration runs in its own transaction together with the
// schema_version bump, so a crash mid-migration leaves a consistent version.
// PRE: db is a valid connection; dbPath identifies the database (for logs)
// POST: schema_version equals LatestSchemaVersion(); idempotent on re-run
func MigrateDB(db *sql.DB, dbPath string) error {
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create schema_version: %w", err)
	}

	version, err := currentVersion(db)
	if err != nil {
		return err
	}
	if version > len(migrations) {
		return fmt.Errorf("database %s is at schema version %d, newer than this binary (%d)", dbPath, version, len(migrations))
	}

	for v := version; v < len(migrations); v++ {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", v+1, err)
		}
		if _, err := tx.Exec(migrations[v]); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", v+1, err)
		}
		if err := setVersion(tx, v+1); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", v+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", v+1, err)
		}
	}

	return nil
}

// currentVersion reads the recorded schema version, 0 for a fresh database.
func currentVersion(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// setVersion replaces the single schema_version row inside a migration transaction.
func setVersion(tx *sql.Tx, version int) error {
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	_, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version)
	return err
}
