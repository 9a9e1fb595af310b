// SPDX-License-Identifier: MPL-2.0

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

const (
	migrationTable = "schema_migrations"

	upMarker   = "-- +migrate Up"
	downMarker = "-- +migrate Down"
)

// ApplyMigrations runs every pending .sql file under dir, in lexicographic
// order, at most once per file name. Each migration runs in its own
// transaction together with its ledger row. A missing migrations directory
// means nothing to do.
func (s *Store) ApplyMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		s.logger.Debug("no migrations directory", "dir", dir)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)

	if err := s.ensureMigrationTable(); err != nil {
		return nil, err
	}

	var applied []string
	for _, name := range names {
		done, err := s.isApplied(name)
		if err != nil {
			return applied, fmt.Errorf("check migration %s: %w", name, err)
		}
		if done {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", name, err)
		}

		upSQL := extractUpSection(string(content))
		if strings.TrimSpace(upSQL) == "" {
			continue
		}

		if err := s.applyOne(name, upSQL); err != nil {
			return applied, err
		}
		s.logger.Info("applied migration", "name", name)
		applied = append(applied, name)
	}

	return applied, nil
}

// AppliedMigrations returns the ledger entries in applied-name order.
func (s *Store) AppliedMigrations() ([]string, error) {
	if err := s.ensureMigrationTable(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query("SELECT name FROM " + migrationTable + " ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list applied migrations: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) ensureMigrationTable() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}
	return nil
}

func (s *Store) applyOne(name, upSQL string) error {
	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", name, err)
	}

	if _, err := tx.Exec(upSQL); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("exec migration %s: %w", name, err)
	}

	if _, err := tx.Exec(
		"INSERT OR IGNORE INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)",
		name,
		time.Now().UTC().UnixMilli(),
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record migration %s: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", name, err)
	}
	return nil
}

func (s *Store) isApplied(name string) (bool, error) {
	var found int
	err := s.db.QueryRow("SELECT 1 FROM "+migrationTable+" WHERE name = ?", name).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// extractUpSection returns the SQL between the Up and Down markers. A file
// without markers is treated as all-Up.
func extractUpSection(content string) string {
	upIdx := strings.Index(content, upMarker)
	if upIdx == -1 {
		return content
	}
	rest := content[upIdx+len(upMarker):]
	if downIdx := strings.Index(rest, downMarker); downIdx != -1 {
		return rest[:downIdx]
	}
	return rest
}
