// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"fmt"

	"modcon-cli/internal/console"
	"modcon-cli/internal/store"
)

// MigrateCommand applies pending on-disk migrations to the application
// database.
type MigrateCommand struct {
	base
}

// Name implements console.Command.
func (c *MigrateCommand) Name() string { return "migrate" }

// Description implements console.Describer.
func (c *MigrateCommand) Description() string { return "Apply pending database migrations" }

// Execute runs every migration not yet recorded in the ledger.
func (c *MigrateCommand) Execute(out console.Output) error {
	cfg := c.app.Config()

	s, err := store.Open(cfg.Database.Path, nil)
	if err != nil {
		return err
	}
	defer s.Close()

	applied, err := s.ApplyMigrations(cfg.MigrationsDir)
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		out.WriteLn("Nothing to migrate.")
		return nil
	}
	for _, name := range applied {
		out.WriteLn(console.SuccessStyle.Render("Applied " + name))
	}
	out.WriteLn(fmt.Sprintf("%d migration(s) applied.", len(applied)))
	return nil
}

// Help implements console.Command.
func (c *MigrateCommand) Help(out console.Output) error {
	writeHelp(out, "modcon migrate", c.Description())
	return nil
}
