// SPDX-License-Identifier: MPL-2.0

// Package store owns the application SQLite database: baseline schema,
// on-disk migrations, and the maintenance queries behind the database
// built-in commands.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var baselineSchema string

// Store wraps the application database.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureSchema applies the embedded baseline schema. All baseline
// statements are idempotent, so this is safe to run on every startup.
func (s *Store) EnsureSchema() error {
	if _, err := s.db.Exec(baselineSchema); err != nil {
		return fmt.Errorf("apply baseline schema: %w", err)
	}
	return nil
}

// ResetStuckStates moves job rows stuck in the transient running state back
// to pending and returns how many were affected. Rows end up stuck when a
// previous process died mid-run.
func (s *Store) ResetStuckStates() (int64, error) {
	res, err := s.db.Exec(
		`UPDATE job_states SET state = 'pending', updated_at = ? WHERE state = 'running'`,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("reset stuck job states: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reset stuck job states: %w", err)
	}
	if n > 0 {
		s.logger.Info("reset stuck job states", "count", n)
	}
	return n, nil
}
