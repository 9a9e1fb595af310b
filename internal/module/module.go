// SPDX-License-Identifier: MPL-2.0

// Package module defines the on-disk layout of a modcon module: a directory
// carrying a module.toml manifest and, optionally, a commands/ directory
// that contributes commands to the application shell.
package module

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	// ManifestName is the manifest file every module must carry.
	ManifestName = "module.toml"

	// CommandsDirName is the per-module directory scanned for command files.
	CommandsDirName = "commands"
)

// ErrManifestNotFound is returned when module.toml is missing from a module
// directory. Check with errors.Is.
var ErrManifestNotFound = errors.New("module.toml not found")

type (
	// Manifest is the parsed module.toml content.
	Manifest struct {
		// Name is the module identifier.
		Name string `toml:"name"`
		// Version is the module version string.
		Version string `toml:"version"`
		// Description is an optional human-readable summary.
		Description string `toml:"description,omitempty"`
	}

	// Module is a loaded module, ready for use.
	Module struct {
		// Path is the absolute filesystem path to the module directory.
		Path string
		// Manifest is the parsed module.toml content.
		Manifest Manifest
	}
)

// IsModule reports whether path is a module directory (carries a manifest).
func IsModule(path string) bool {
	info, err := os.Stat(filepath.Join(path, ManifestName))
	return err == nil && !info.IsDir()
}

// Load reads and validates the manifest at path.
func Load(path string) (*Module, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve module path %q: %w", path, err)
	}

	data, err := os.ReadFile(filepath.Join(absPath, ManifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", absPath, ErrManifestNotFound)
		}
		return nil, fmt.Errorf("read module manifest: %w", err)
	}

	var manifest Manifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestName, err)
	}
	if manifest.Name == "" {
		return nil, fmt.Errorf("parse %s: missing module name", ManifestName)
	}

	return &Module{Path: absPath, Manifest: manifest}, nil
}

// Name returns the module identifier from the manifest.
func (m *Module) Name() string {
	return m.Manifest.Name
}

// CommandsDir returns the module's commands directory. The directory may
// not exist; most modules contribute no commands.
func (m *Module) CommandsDir() string {
	return filepath.Join(m.Path, CommandsDirName)
}

// Scaffold creates a module directory at path with the given manifest and
// an empty commands/ directory. It refuses to overwrite an existing module.
func Scaffold(path string, manifest Manifest) (*Module, error) {
	if manifest.Name == "" {
		return nil, fmt.Errorf("scaffold module: missing module name")
	}
	if IsModule(path) {
		return nil, fmt.Errorf("scaffold module: %s already exists in %s", ManifestName, path)
	}

	if err := os.MkdirAll(filepath.Join(path, CommandsDirName), 0o755); err != nil {
		return nil, fmt.Errorf("create module layout: %w", err)
	}

	data, err := toml.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", ManifestName, err)
	}
	if err := os.WriteFile(filepath.Join(path, ManifestName), data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", ManifestName, err)
	}

	return Load(path)
}
