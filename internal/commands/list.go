// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"fmt"

	"modcon-cli/internal/console"
)

// ListCommand prints every registered command with its description. It is
// the configured default command out of the box.
type ListCommand struct {
	base
}

// Name implements console.Command.
func (c *ListCommand) Name() string { return "list" }

// Description implements console.Describer.
func (c *ListCommand) Description() string { return "List all available commands" }

// Execute writes the command index in ascending name order.
func (c *ListCommand) Execute(out console.Output) error {
	out.WriteLn(console.TitleStyle.Render("Available commands:"))
	out.WriteLn("")

	names := c.app.CommandNames()
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	for _, name := range names {
		line := "  " + console.CmdStyle.Render(fmt.Sprintf("%-*s", width, name))
		if cmd, ok := c.app.Get(name); ok {
			if d, ok := cmd.(console.Describer); ok && d.Description() != "" {
				line += "  " + console.SubtitleStyle.Render(d.Description())
			}
		}
		out.WriteLn(line)
	}
	return nil
}

// Help implements console.Command.
func (c *ListCommand) Help(out console.Output) error {
	writeHelp(out, "modcon list", c.Description())
	return nil
}
