// SPDX-License-Identifier: MPL-2.0

// Package console contains the command registry and the dispatcher that
// together form the modcon application shell. Commands are opaque named
// units; the shell resolves the requested one from parsed input and runs
// either its execute or its help behavior.
package console

import "modcon-cli/internal/config"

type (
	// Command is a named, self-contained unit of executable behavior.
	// Implementations receive the current Input and a back-reference to the
	// running Application before Execute or Help is invoked.
	Command interface {
		// Name returns the command name as typed on the command line.
		Name() string
		// Execute runs the command, writing results to out.
		Execute(out Output) error
		// Help writes usage information to out.
		Help(out Output) error
		// SetInput injects the parsed process input.
		SetInput(in Input)
		// SetApplication injects the owning application shell.
		SetApplication(app Application)
	}

	// Factory constructs a Command with no arguments. Commands requiring
	// constructor parameters are out of scope for discovery and must be
	// registered manually via Application.Add.
	Factory func() Command

	// Describer is optionally implemented by commands that carry a short
	// description for listings.
	Describer interface {
		Description() string
	}

	// Input is the parsed process input consumed read-only by the shell:
	// positional arguments plus named/boolean options.
	Input interface {
		// FirstArgument returns the first positional argument, if any.
		FirstArgument() (string, bool)
		// Argument returns the i-th positional argument, if present.
		Argument(i int) (string, bool)
		// HasOption reports whether any of the aliases was supplied.
		HasOption(aliases ...string) bool
		// Option returns the value of a named option, if supplied.
		Option(name string) (string, bool)
	}

	// Output is a line-oriented text sink. Call WriteLn("") for a bare
	// line break.
	Output interface {
		WriteLn(text string)
	}

	// Application is the surface the shell exposes to running commands:
	// registry mutation, lookup, and configuration access.
	Application interface {
		// Add registers a command; duplicate names fail.
		Add(cmd Command) error
		// Remove drops a command by name; absent names are a no-op.
		Remove(name string)
		// Get looks up a command by name.
		Get(name string) (Command, bool)
		// CommandNames returns all registered names in ascending order.
		CommandNames() []string
		// Default resolves the configured default command, if any.
		Default() (Command, bool)
		// Config returns the application configuration.
		Config() *config.Config
	}

	// Loader populates a Registry from the configured command sources.
	Loader interface {
		Load(reg *Registry) error
	}
)
