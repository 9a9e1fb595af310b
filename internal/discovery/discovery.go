// SPDX-License-Identifier: MPL-2.0

// Package discovery turns the configured command sources into registered
// commands: built-ins first, then the core commands directory, then each
// configured module's commands directory.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"modcon-cli/internal/config"
	"modcon-cli/internal/console"
	"modcon-cli/internal/module"

	"github.com/charmbracelet/log"
)

// UnknownCommandFileError is returned when a discovered command file has no
// registered factory. Discovery state like this is fatal: the file names a
// command the binary cannot construct.
type UnknownCommandFileError struct {
	Path string
	Key  string
}

// Error implements the error interface.
func (e *UnknownCommandFileError) Error() string {
	return fmt.Sprintf("no command factory registered for %s (derived key %q)", e.Path, e.Key)
}

// Loader feeds the registry from all configured sources in fixed precedence
// order. It implements console.Loader.
type Loader struct {
	cfg      *config.Config
	logger   *log.Logger
	builtins []console.Factory
}

// NewLoader creates a Loader. The builtins always exist regardless of
// filesystem state and are added before any directory scan.
func NewLoader(cfg *config.Config, logger *log.Logger, builtins ...console.Factory) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{cfg: cfg, logger: logger, builtins: builtins}
}

// Load populates reg. Name collisions across any two sources propagate the
// registry's duplicate error and abort loading; a source directory that
// does not exist contributes zero commands and no error.
func (l *Loader) Load(reg *console.Registry) error {
	for _, factory := range l.builtins {
		if err := reg.Add(factory()); err != nil {
			return err
		}
	}
	l.logger.Debug("registered built-in commands", "count", len(l.builtins))

	if err := l.loadDir(reg, l.cfg.CommandsDir); err != nil {
		return err
	}

	if l.cfg.Modules == nil {
		l.logger.Debug("no modules configured, skipping module command loading")
		return nil
	}
	for _, modulePath := range l.cfg.Modules {
		dir := filepath.Join(l.cfg.ModulesDir, modulePath)

		commandsDir := filepath.Join(dir, module.CommandsDirName)
		if module.IsModule(dir) {
			m, err := module.Load(dir)
			if err != nil {
				return fmt.Errorf("load module %q: %w", modulePath, err)
			}
			commandsDir = m.CommandsDir()
			l.logger.Debug("loading module commands", "module", m.Name(), "version", m.Manifest.Version)
		}

		if err := l.loadDir(reg, commandsDir); err != nil {
			return err
		}
	}

	return nil
}

// loadDir recursively scans dir for command files, constructs each through
// the factory manifest, and adds it to reg. Only a missing directory is
// tolerated; any other filesystem error is fatal.
func (l *Loader) loadDir(reg *console.Registry, dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		l.logger.Debug("skipping missing commands directory", "dir", dir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat commands directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("commands path %s is not a directory", dir)
	}

	count := 0
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		key, ok := CommandKey(d.Name())
		if !ok {
			return nil
		}

		factory, ok := factoryFor(key)
		if !ok {
			return &UnknownCommandFileError{Path: path, Key: key}
		}

		if err := reg.Add(factory()); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}

	l.logger.Debug("scanned commands directory", "dir", dir, "commands", count)
	return nil
}
