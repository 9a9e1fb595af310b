// SPDX-License-Identifier: MPL-2.0

package console

import (
	"fmt"

	"modcon-cli/internal/config"
)

// App is the application shell: it owns the registry, fixes the default
// command at construction, and dispatches a single run to the command
// resolved from input.
//
// An App is single-use and single-threaded: construct, call Run once, done.
// Callers that reuse one must serialize invocations themselves.
type App struct {
	name     string
	version  string
	cfg      *config.Config
	registry *Registry
	out      Output
}

// New builds a ready App. The loader populates the registry in fixed source
// order (built-ins, core directory, modules); any duplicate name or
// discovery failure aborts construction. Afterwards the configured default
// command is recorded when it resolves, and the enumeration order is fixed.
func New(name, version string, cfg *config.Config, loader Loader, out Output) (*App, error) {
	reg := NewRegistry()
	if err := loader.Load(reg); err != nil {
		return nil, err
	}

	if cfg.DefaultCommand != "" {
		if _, ok := reg.Get(cfg.DefaultCommand); ok {
			reg.SetDefault(cfg.DefaultCommand)
		}
	}
	reg.Sort()

	return &App{
		name:     name,
		version:  version,
		cfg:      cfg,
		registry: reg,
		out:      out,
	}, nil
}

// Run resolves a command from the parsed input and invokes it.
//
// With no positional argument, a version flag wins over the default
// command; otherwise the default is selected (it may be unset). An explicit
// name is looked up verbatim. When nothing resolves, a not-found line is
// written and the run still completes normally: unknown commands are an
// expected outcome, not an error. Every branch ends with one trailing
// blank line.
func (a *App) Run(in Input) error {
	var cmd Command

	name, hasName := in.FirstArgument()
	if !hasName {
		if in.HasOption("v", "version") {
			a.out.WriteLn(fmt.Sprintf("%s %s", a.name, a.version))
			a.out.WriteLn("")
			return nil
		}
		cmd, _ = a.registry.Default()
	} else {
		cmd, _ = a.registry.Get(name)
	}

	if cmd == nil {
		// A missing default falls through here with an empty name.
		a.out.WriteLn(fmt.Sprintf("command not found: %s", name))
		a.out.WriteLn("")
		return nil
	}

	cmd.SetInput(in)
	cmd.SetApplication(a)

	var err error
	if in.HasOption("h", "help") {
		err = cmd.Help(a.out)
	} else {
		err = cmd.Execute(a.out)
	}
	a.out.WriteLn("")
	return err
}

// Name returns the program name.
func (a *App) Name() string {
	return a.name
}

// Version returns the program version string.
func (a *App) Version() string {
	return a.version
}

// Add registers a command programmatically (Application interface).
func (a *App) Add(cmd Command) error {
	return a.registry.Add(cmd)
}

// Remove drops a command by name (Application interface).
func (a *App) Remove(name string) {
	a.registry.Remove(name)
}

// Get looks up a command by name (Application interface).
func (a *App) Get(name string) (Command, bool) {
	return a.registry.Get(name)
}

// CommandNames returns all registered names in ascending order.
func (a *App) CommandNames() []string {
	return a.registry.Names()
}

// Default resolves the default command, if one is configured and present.
func (a *App) Default() (Command, bool) {
	return a.registry.Default()
}

// Config returns the application configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}
