// Package sqlite provides SQLite-backed simulation run persistence.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/montyhall/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/montyhall/internal/services/sim/storage"
	"github.com/louisbranch/montyhall/internal/services/sim/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed simulation run persistence.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a sim SQLite store and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordRun persists one completed batch run.
func (s *Store) RecordRun(ctx context.Context, run storage.RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	run.ID = strings.TrimSpace(run.ID)
	if run.ID == "" {
		return fmt.Errorf("run id is required")
	}
	if run.Trials < 0 {
		return fmt.Errorf("trial count must not be negative")
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO simulation_runs (
	id,
	trials,
	seed,
	workers,
	stay_wins,
	switch_wins,
	stay_proportion,
	switch_proportion,
	created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		run.ID,
		run.Trials,
		run.Seed,
		run.Workers,
		run.StayWins,
		run.SwitchWins,
		run.StayProportion,
		run.SwitchProportion,
		run.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// GetRun loads one run record by ID. Missing records return
// storage.ErrNotFound.
func (s *Store) GetRun(ctx context.Context, id string) (storage.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.RunRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.RunRecord{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.RunRecord{}, fmt.Errorf("run id is required")
	}

	var run storage.RunRecord
	var createdAt int64
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT id, trials, seed, workers, stay_wins, switch_wins, stay_proportion, switch_proportion, created_at
FROM simulation_runs
WHERE id = ?
`, id).Scan(
		&run.ID,
		&run.Trials,
		&run.Seed,
		&run.Workers,
		&run.StayWins,
		&run.SwitchWins,
		&run.StayProportion,
		&run.SwitchProportion,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.RunRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.RunRecord{}, fmt.Errorf("get run: %w", err)
	}
	run.CreatedAt = time.UnixMilli(createdAt).UTC()
	return run, nil
}

// ListRuns lists newest-first run records.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]storage.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, trials, seed, workers, stay_wins, switch_wins, stay_proportion, switch_proportion, created_at
FROM simulation_runs
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []storage.RunRecord
	for rows.Next() {
		var run storage.RunRecord
		var createdAt int64
		if err := rows.Scan(
			&run.ID,
			&run.Trials,
			&run.Seed,
			&run.Workers,
			&run.StayWins,
			&run.SwitchWins,
			&run.StayProportion,
			&run.SwitchProportion,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt = time.UnixMilli(createdAt).UTC()
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
