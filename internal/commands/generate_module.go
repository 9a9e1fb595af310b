// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"path/filepath"

	"modcon-cli/internal/console"
	"modcon-cli/internal/module"
)

// GenerateModuleCommand scaffolds a new module under the modules root: a
// module.toml manifest plus an empty commands/ directory.
type GenerateModuleCommand struct {
	base
}

// Name implements console.Command.
func (c *GenerateModuleCommand) Name() string { return "generate-module" }

// Description implements console.Describer.
func (c *GenerateModuleCommand) Description() string { return "Scaffold a new module skeleton" }

// Execute creates <modules-root>/<name> with a fresh manifest.
func (c *GenerateModuleCommand) Execute(out console.Output) error {
	name, ok := c.input.Argument(1)
	if !ok {
		out.WriteLn(console.ErrorStyle.Render("A module name is required."))
		out.WriteLn("Usage: modcon generate-module <name>")
		return nil
	}

	cfg := c.app.Config()
	path := filepath.Join(cfg.ModulesDir, name)

	m, err := module.Scaffold(path, module.Manifest{
		Name:    name,
		Version: "0.1.0",
	})
	if err != nil {
		return err
	}

	out.WriteLn(console.SuccessStyle.Render("Created module " + m.Name() + " at " + m.Path))
	out.WriteLn("Add " + console.CmdStyle.Render(`"`+name+`"`) + " to the modules list in modcon.toml to enable it.")
	return nil
}

// Help implements console.Command.
func (c *GenerateModuleCommand) Help(out console.Output) error {
	writeHelp(out, "modcon generate-module <name>", c.Description())
	return nil
}
