// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"strings"
	"testing"

	"modcon-cli/internal/config"
	"modcon-cli/internal/console"
)

// recordingOutput captures WriteLn calls for assertions.
type recordingOutput struct {
	lines []string
}

func (o *recordingOutput) WriteLn(text string) { o.lines = append(o.lines, text) }

func (o *recordingOutput) String() string { return strings.Join(o.lines, "\n") }

// loaderFunc adapts a function to the console.Loader interface.
type loaderFunc func(reg *console.Registry) error

func (f loaderFunc) Load(reg *console.Registry) error { return f(reg) }

// newTestApp builds a real application shell around the given commands so
// Run performs the usual input/application injection.
func newTestApp(t *testing.T, cfg *config.Config, cmds ...console.Command) (*console.App, *recordingOutput) {
	t.Helper()
	out := &recordingOutput{}
	app, err := console.New("modcon", "test", cfg, loaderFunc(func(reg *console.Registry) error {
		for _, cmd := range cmds {
			if err := reg.Add(cmd); err != nil {
				return err
			}
		}
		return nil
	}), out)
	if err != nil {
		t.Fatalf("console.New() error = %v", err)
	}
	return app, out
}

func TestBuiltins_NamesAndDescriptions(t *testing.T) {
	want := map[string]bool{
		"cache-clear":        true,
		"database-update":    true,
		"fix-states":         true,
		"generate-migration": true,
		"generate-module":    true,
		"list":               true,
		"migrate":            true,
	}

	factories := Builtins()
	if len(factories) != len(want) {
		t.Fatalf("Builtins() returned %d factories, want %d", len(factories), len(want))
	}

	for _, factory := range factories {
		cmd := factory()
		if !want[cmd.Name()] {
			t.Errorf("unexpected built-in %q", cmd.Name())
		}
		d, ok := cmd.(console.Describer)
		if !ok || d.Description() == "" {
			t.Errorf("built-in %q should carry a description", cmd.Name())
		}
	}
}

func TestBuiltins_LoadWithoutCollision(t *testing.T) {
	reg := console.NewRegistry()
	for _, factory := range Builtins() {
		if err := reg.Add(factory()); err != nil {
			t.Fatalf("Add() error = %v, built-in names must be unique", err)
		}
	}
}
