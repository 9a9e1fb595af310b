// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"fmt"

	"modcon-cli/internal/console"
	"modcon-cli/internal/store"
)

// FixStatesCommand repairs job rows left in the transient running state by
// a process that died mid-run.
type FixStatesCommand struct {
	base
}

// Name implements console.Command.
func (c *FixStatesCommand) Name() string { return "fix-states" }

// Description implements console.Describer.
func (c *FixStatesCommand) Description() string { return "Reset jobs stuck in the running state" }

// Execute moves stuck running rows back to pending.
func (c *FixStatesCommand) Execute(out console.Output) error {
	cfg := c.app.Config()

	s, err := store.Open(cfg.Database.Path, nil)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.EnsureSchema(); err != nil {
		return err
	}

	n, err := s.ResetStuckStates()
	if err != nil {
		return err
	}

	if n == 0 {
		out.WriteLn("No stuck job states found.")
		return nil
	}
	out.WriteLn(console.SuccessStyle.Render(fmt.Sprintf("Reset %d stuck job state(s) to pending.", n)))
	return nil
}

// Help implements console.Command.
func (c *FixStatesCommand) Help(out console.Output) error {
	writeHelp(out, "modcon fix-states", c.Description())
	return nil
}
