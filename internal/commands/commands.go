// SPDX-License-Identifier: MPL-2.0

// Package commands provides the built-in modcon commands. Every command
// here is part of the fixed built-in set added before any directory scan,
// and also self-registers a discovery factory so command files in scanned
// directories can name it.
package commands

import (
	"modcon-cli/internal/console"
	"modcon-cli/internal/discovery"
)

func init() {
	discovery.Register("cache-clear", func() console.Command { return &CacheClearCommand{} })
	discovery.Register("database-update", func() console.Command { return &DatabaseUpdateCommand{} })
	discovery.Register("fix-states", func() console.Command { return &FixStatesCommand{} })
	discovery.Register("generate-migration", func() console.Command { return &GenerateMigrationCommand{} })
	discovery.Register("generate-module", func() console.Command { return &GenerateModuleCommand{} })
	discovery.Register("list", func() console.Command { return &ListCommand{} })
	discovery.Register("migrate", func() console.Command { return &MigrateCommand{} })
}

// Builtins returns factories for the fixed built-in command set, added to
// the registry first regardless of filesystem state.
func Builtins() []console.Factory {
	return []console.Factory{
		func() console.Command { return &CacheClearCommand{} },
		func() console.Command { return &DatabaseUpdateCommand{} },
		func() console.Command { return &FixStatesCommand{} },
		func() console.Command { return &GenerateMigrationCommand{} },
		func() console.Command { return &GenerateModuleCommand{} },
		func() console.Command { return &ListCommand{} },
		func() console.Command { return &MigrateCommand{} },
	}
}

// base carries the injected input and application handle shared by all
// built-in commands.
type base struct {
	input console.Input
	app   console.Application
}

// SetInput injects the parsed process input.
func (b *base) SetInput(in console.Input) { b.input = in }

// SetApplication injects the owning application shell.
func (b *base) SetApplication(app console.Application) { b.app = app }

// writeHelp emits the shared usage/description help layout.
func writeHelp(out console.Output, usage, description string) {
	out.WriteLn("Usage: " + usage)
	out.WriteLn("")
	out.WriteLn(description)
}
