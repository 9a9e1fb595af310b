// SPDX-License-Identifier: MPL-2.0

// Package config loads the modcon configuration from TOML files and
// environment variables via Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"modcon-cli/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "modcon"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "modcon"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix is the prefix for environment variable overrides (MODCON_*).
	EnvPrefix = "MODCON"
)

type (
	// DatabaseConfig holds the application database settings.
	DatabaseConfig struct {
		// Path is the SQLite database file. Empty means <base>/modcon.db.
		Path string `mapstructure:"path"`
	}

	// Config is the resolved application configuration.
	Config struct {
		// DefaultCommand names the command run when no name is supplied.
		DefaultCommand string `mapstructure:"default_command"`

		// CommandsDir is the core commands directory scanned at startup.
		CommandsDir string `mapstructure:"commands_dir"`

		// ModulesDir is the root under which module paths are resolved.
		ModulesDir string `mapstructure:"modules_dir"`

		// Modules lists module paths (relative to ModulesDir) whose
		// commands/ directories are scanned. Nil disables module loading.
		Modules []string `mapstructure:"modules"`

		// CacheDir is the application cache directory.
		CacheDir string `mapstructure:"cache_dir"`

		// MigrationsDir holds the on-disk .sql migration files.
		MigrationsDir string `mapstructure:"migrations_dir"`

		// Database configures the application store.
		Database DatabaseConfig `mapstructure:"database"`

		// Verbose enables verbose output.
		Verbose bool `mapstructure:"verbose"`
	}

	// LoadOptions controls where Load looks for the config file.
	LoadOptions struct {
		// ConfigFilePath, when set, is used exclusively.
		ConfigFilePath string
		// BaseDir overrides the working directory used for relative defaults
		// and the local config file lookup. Empty means the process cwd.
		BaseDir string
	}
)

// DefaultConfig returns the built-in defaults, relative to baseDir.
func DefaultConfig(baseDir string) *Config {
	return &Config{
		DefaultCommand: "list",
		CommandsDir:    filepath.Join(baseDir, "commands"),
		ModulesDir:     filepath.Join(baseDir, "modules"),
		CacheDir:       filepath.Join(baseDir, "cache"),
		MigrationsDir:  filepath.Join(baseDir, "migrations"),
		Database: DatabaseConfig{
			Path: filepath.Join(baseDir, AppName+".db"),
		},
	}
}

// ConfigDir returns the modcon configuration directory using platform
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application
// Support, and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load resolves the configuration with default options.
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions resolves the configuration. Lookup order: the explicit
// ConfigFilePath when set, otherwise <config-dir>/modcon.toml, otherwise
// ./modcon.toml in the base directory. A missing config file is not an
// error; defaults and MODCON_* environment overrides still apply.
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	baseDir := opts.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		baseDir = wd
	}

	v := viper.New()
	v.SetConfigType(ConfigFileExt)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig(baseDir)
	v.SetDefault("default_command", defaults.DefaultCommand)
	v.SetDefault("commands_dir", defaults.CommandsDir)
	v.SetDefault("modules_dir", defaults.ModulesDir)
	v.SetDefault("cache_dir", defaults.CacheDir)
	v.SetDefault("migrations_dir", defaults.MigrationsDir)
	v.SetDefault("database.path", defaults.Database.Path)
	v.SetDefault("verbose", defaults.Verbose)

	path, err := resolveConfigFile(opts.ConfigFilePath, baseDir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid TOML syntax").
				WithSuggestion("Run 'modcon list' without a config file to use defaults").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, issue.WrapWithOperation(err, "parse configuration")
	}

	return &cfg, nil
}

// resolveConfigFile picks the config file to read, or "" when none exists.
func resolveConfigFile(override, baseDir string) (string, error) {
	if override != "" {
		if !fileExists(override) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(override).
				WithSuggestion("Verify the file path is correct").
				Wrap(fmt.Errorf("config file not found: %s", override)).
				BuildError()
		}
		return override, nil
	}

	name := ConfigFileName + "." + ConfigFileExt

	if cfgDir, err := ConfigDir(); err == nil {
		path := filepath.Join(cfgDir, name)
		if fileExists(path) {
			return path, nil
		}
	}

	local := filepath.Join(baseDir, name)
	if fileExists(local) {
		return local, nil
	}

	return "", nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
