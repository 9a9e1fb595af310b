// SPDX-License-Identifier: MPL-2.0

// Command modcon is the modular application console: built-in and
// module-provided commands discovered at startup and dispatched from the
// command line.
package main

import (
	"errors"
	"fmt"
	"os"

	"modcon-cli/internal/commands"
	"modcon-cli/internal/config"
	"modcon-cli/internal/console"
	"modcon-cli/internal/discovery"
	"modcon-cli/internal/issue"

	"github.com/charmbracelet/log"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// versionString returns the formatted version for --version output.
func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

func main() {
	in := console.NewArgvInput(os.Args[1:])
	out := console.NewOutput(os.Stdout)

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	cfgPath, _ := in.Option("config")
	cfg, err := config.LoadWithOptions(config.LoadOptions{ConfigFilePath: cfgPath})
	if err != nil {
		fatal(logger, err, false)
	}
	if cfg.Verbose || in.HasOption("verbose") {
		logger.SetLevel(log.DebugLevel)
	}

	loader := discovery.NewLoader(cfg, logger, commands.Builtins()...)
	app, err := console.New(config.AppName, versionString(), cfg, loader, out)
	if err != nil {
		fatal(logger, err, cfg.Verbose)
	}

	if err := app.Run(in); err != nil {
		fatal(logger, err, cfg.Verbose)
	}
}

// fatal reports a startup or command failure and exits non-zero.
func fatal(logger *log.Logger, err error, verbose bool) {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		logger.Error(ae.Format(verbose))
	} else {
		logger.Error(err.Error())
	}
	os.Exit(1)
}
