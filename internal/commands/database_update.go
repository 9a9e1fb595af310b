// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"fmt"

	"modcon-cli/internal/console"
	"modcon-cli/internal/store"
)

// DatabaseUpdateCommand brings the application database fully up to date:
// baseline schema first, then every pending migration.
type DatabaseUpdateCommand struct {
	base
}

// Name implements console.Command.
func (c *DatabaseUpdateCommand) Name() string { return "database-update" }

// Description implements console.Describer.
func (c *DatabaseUpdateCommand) Description() string {
	return "Ensure the database schema and apply pending migrations"
}

// Execute applies the baseline schema and all pending migrations.
func (c *DatabaseUpdateCommand) Execute(out console.Output) error {
	cfg := c.app.Config()

	s, err := store.Open(cfg.Database.Path, nil)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.EnsureSchema(); err != nil {
		return err
	}
	out.WriteLn("Baseline schema is up to date.")

	applied, err := s.ApplyMigrations(cfg.MigrationsDir)
	if err != nil {
		return err
	}

	total, err := s.AppliedMigrations()
	if err != nil {
		return err
	}
	out.WriteLn(console.SuccessStyle.Render(
		fmt.Sprintf("Database updated: %d migration(s) applied now, %d recorded in total.", len(applied), len(total))))
	return nil
}

// Help implements console.Command.
func (c *DatabaseUpdateCommand) Help(out console.Output) error {
	writeHelp(out, "modcon database-update", c.Description())
	return nil
}
