// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"modcon-cli/internal/config"
	"modcon-cli/internal/console"
	"modcon-cli/internal/module"
)

func TestGenerateMigrationCommand_WritesSkeleton(t *testing.T) {
	cfg := config.DefaultConfig(t.TempDir())
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	cmd := &GenerateMigrationCommand{now: func() time.Time { return fixed }}

	app, out := newTestApp(t, cfg, cmd)
	if err := app.Run(console.NewArgvInput([]string{"generate-migration", "Add Users Table"})); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	path := filepath.Join(cfg.MigrationsDir, "20240102030405_add_users_table.sql")
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("generated migration missing: %v", err)
	}
	if !strings.Contains(string(content), "-- +migrate Up") ||
		!strings.Contains(string(content), "-- +migrate Down") {
		t.Errorf("skeleton = %q, want Up/Down markers", content)
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("output should reference the created file:\n%s", out.String())
	}
}

func TestGenerateMigrationCommand_DefaultLabel(t *testing.T) {
	cfg := config.DefaultConfig(t.TempDir())
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	cmd := &GenerateMigrationCommand{now: func() time.Time { return fixed }}

	app, _ := newTestApp(t, cfg, cmd)
	if err := app.Run(console.NewArgvInput([]string{"generate-migration"})); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.MigrationsDir, "20240102030405_migration.sql")); err != nil {
		t.Errorf("default-labeled migration missing: %v", err)
	}
}

func TestGenerateMigrationCommand_RefusesOverwrite(t *testing.T) {
	cfg := config.DefaultConfig(t.TempDir())
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	cmd := &GenerateMigrationCommand{now: func() time.Time { return fixed }}

	app, _ := newTestApp(t, cfg, cmd)
	in := []string{"generate-migration", "users"}
	if err := app.Run(console.NewArgvInput(in)); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if err := app.Run(console.NewArgvInput(in)); err == nil {
		t.Error("second Run() with the same timestamp should fail")
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Add Users Table", "add_users_table"},
		{"fix-prices", "fix_prices"},
		{"___", "migration"},
		{"v2", "v2"},
	}

	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateModuleCommand_Scaffolds(t *testing.T) {
	cfg := config.DefaultConfig(t.TempDir())

	app, out := newTestApp(t, cfg, &GenerateModuleCommand{})
	if err := app.Run(console.NewArgvInput([]string{"generate-module", "shipping"})); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	modDir := filepath.Join(cfg.ModulesDir, "shipping")
	if !module.IsModule(modDir) {
		t.Fatal("generate-module did not create a module manifest")
	}

	m, err := module.Load(modDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Name() != "shipping" {
		t.Errorf("module name = %q, want %q", m.Name(), "shipping")
	}
	if !strings.Contains(out.String(), "Created module shipping") {
		t.Errorf("output = %q", out.String())
	}
}

func TestGenerateModuleCommand_MissingNameIsSoftFailure(t *testing.T) {
	cfg := config.DefaultConfig(t.TempDir())

	app, out := newTestApp(t, cfg, &GenerateModuleCommand{})
	if err := app.Run(console.NewArgvInput([]string{"generate-module"})); err != nil {
		t.Fatalf("Run() error = %v, missing name should be reported, not returned", err)
	}
	if !strings.Contains(out.String(), "module name is required") {
		t.Errorf("output = %q, want a usage hint", out.String())
	}
}
