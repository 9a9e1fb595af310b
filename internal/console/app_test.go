// SPDX-License-Identifier: MPL-2.0

package console

import (
	"fmt"
	"strings"
	"testing"

	"modcon-cli/internal/config"
)

// loaderFunc adapts a function to the Loader interface.
type loaderFunc func(reg *Registry) error

func (f loaderFunc) Load(reg *Registry) error { return f(reg) }

// recordingOutput captures WriteLn calls for assertions.
type recordingOutput struct {
	lines []string
}

func (o *recordingOutput) WriteLn(text string) { o.lines = append(o.lines, text) }

// fakeInput implements Input with canned values.
type fakeInput struct {
	first    string
	hasFirst bool
	options  map[string]bool
}

func (in *fakeInput) FirstArgument() (string, bool) { return in.first, in.hasFirst }

func (in *fakeInput) Argument(i int) (string, bool) {
	if i == 0 && in.hasFirst {
		return in.first, true
	}
	return "", false
}

func (in *fakeInput) HasOption(aliases ...string) bool {
	for _, alias := range aliases {
		if in.options[alias] {
			return true
		}
	}
	return false
}

func (in *fakeInput) Option(name string) (string, bool) { return "", in.options[name] }

// spyCommand records which behavior was invoked and what was injected.
type spyCommand struct {
	name     string
	executed bool
	helped   bool
	gotInput Input
	gotApp   Application
}

func (c *spyCommand) Name() string { return c.name }

func (c *spyCommand) Execute(out Output) error {
	c.executed = true
	out.WriteLn("executed " + c.name)
	return nil
}

func (c *spyCommand) Help(out Output) error {
	c.helped = true
	out.WriteLn("help for " + c.name)
	return nil
}

func (c *spyCommand) SetInput(in Input)            { c.gotInput = in }
func (c *spyCommand) SetApplication(a Application) { c.gotApp = a }

func newTestApp(t *testing.T, cfg *config.Config, out Output, cmds ...Command) *App {
	t.Helper()
	app, err := New("modcon", "1.2.3", cfg, loaderFunc(func(reg *Registry) error {
		for _, cmd := range cmds {
			if err := reg.Add(cmd); err != nil {
				return err
			}
		}
		return nil
	}), out)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return app
}

func TestNew_LoaderFailureAborts(t *testing.T) {
	out := &recordingOutput{}
	_, err := New("modcon", "dev", &config.Config{}, loaderFunc(func(reg *Registry) error {
		return fmt.Errorf("broken source")
	}), out)
	if err == nil {
		t.Fatal("New() should propagate loader errors")
	}
}

func TestNew_DuplicateAbortsConstruction(t *testing.T) {
	out := &recordingOutput{}
	_, err := New("modcon", "dev", &config.Config{}, loaderFunc(func(reg *Registry) error {
		if err := reg.Add(&spyCommand{name: "list"}); err != nil {
			return err
		}
		return reg.Add(&spyCommand{name: "list"})
	}), out)
	if err == nil {
		t.Fatal("New() should fail when two commands share a name")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Errorf("error = %v, want duplicate registration error", err)
	}
}

func TestNew_UnresolvableDefaultLeftUnset(t *testing.T) {
	out := &recordingOutput{}
	cfg := &config.Config{DefaultCommand: "ghost"}
	app := newTestApp(t, cfg, out, &spyCommand{name: "list"})

	if _, ok := app.Default(); ok {
		t.Error("Default() should be unset when the configured name does not resolve")
	}
}

func TestRun_ExecutesDefaultCommand(t *testing.T) {
	out := &recordingOutput{}
	cmd := &spyCommand{name: "list"}
	cfg := &config.Config{DefaultCommand: "list"}
	app := newTestApp(t, cfg, out, cmd)

	if err := app.Run(&fakeInput{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !cmd.executed {
		t.Error("default command was not executed")
	}
	if cmd.helped {
		t.Error("help behavior should not run without the help flag")
	}
	if cmd.gotInput == nil || cmd.gotApp == nil {
		t.Error("input and application were not injected before execution")
	}
}

func TestRun_VersionFlagWinsOverDefault(t *testing.T) {
	out := &recordingOutput{}
	cmd := &spyCommand{name: "list"}
	cfg := &config.Config{DefaultCommand: "list"}
	app := newTestApp(t, cfg, out, cmd)

	in := &fakeInput{options: map[string]bool{"version": true}}
	if err := app.Run(in); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if cmd.executed || cmd.helped {
		t.Error("no command should run when the version flag is set")
	}
	if len(out.lines) != 2 {
		t.Fatalf("Run() wrote %d lines, want version line plus trailing blank", len(out.lines))
	}
	if out.lines[0] != "modcon 1.2.3" {
		t.Errorf("version line = %q, want %q", out.lines[0], "modcon 1.2.3")
	}
	if out.lines[1] != "" {
		t.Error("last write must be the trailing blank line")
	}
}

func TestRun_UnknownCommandReportsNotFound(t *testing.T) {
	out := &recordingOutput{}
	cmd := &spyCommand{name: "list"}
	app := newTestApp(t, &config.Config{}, out, cmd)

	in := &fakeInput{first: "ghost", hasFirst: true}
	if err := app.Run(in); err != nil {
		t.Fatalf("Run() error = %v, not-found must not be an error", err)
	}

	if cmd.executed || cmd.helped {
		t.Error("no command should run for an unknown name")
	}
	if len(out.lines) != 2 {
		t.Fatalf("Run() wrote %d lines, want message plus trailing blank", len(out.lines))
	}
	if !strings.Contains(out.lines[0], "ghost") {
		t.Errorf("not-found line = %q, should reference the requested name", out.lines[0])
	}
}

func TestRun_NoArgsAndNoDefaultFallsThroughToNotFound(t *testing.T) {
	out := &recordingOutput{}
	app := newTestApp(t, &config.Config{}, out, &spyCommand{name: "list"})

	if err := app.Run(&fakeInput{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Same message shape as an unknown explicit name, with an empty name.
	if len(out.lines) != 2 || out.lines[0] != "command not found: " {
		t.Errorf("lines = %q, want the empty-name not-found fallback", out.lines)
	}
}

func TestRun_HelpFlagInvokesHelp(t *testing.T) {
	out := &recordingOutput{}
	cmd := &spyCommand{name: "migrate"}
	app := newTestApp(t, &config.Config{}, out, cmd)

	in := &fakeInput{first: "migrate", hasFirst: true, options: map[string]bool{"h": true}}
	if err := app.Run(in); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !cmd.helped {
		t.Error("help behavior should run when the help flag is set")
	}
	if cmd.executed {
		t.Error("execute behavior must not run when the help flag is set")
	}
}

func TestRun_AlwaysEndsWithOneTrailingBlankLine(t *testing.T) {
	tests := []struct {
		name string
		in   *fakeInput
	}{
		{"explicit command", &fakeInput{first: "list", hasFirst: true}},
		{"help branch", &fakeInput{first: "list", hasFirst: true, options: map[string]bool{"help": true}}},
		{"version branch", &fakeInput{options: map[string]bool{"v": true}}},
		{"not found", &fakeInput{first: "ghost", hasFirst: true}},
		{"no default", &fakeInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &recordingOutput{}
			app := newTestApp(t, &config.Config{}, out, &spyCommand{name: "list"})

			if err := app.Run(tt.in); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if len(out.lines) == 0 {
				t.Fatal("Run() wrote no output")
			}
			if last := out.lines[len(out.lines)-1]; last != "" {
				t.Errorf("last write = %q, want a blank line", last)
			}
			if len(out.lines) > 1 && out.lines[len(out.lines)-2] == "" {
				t.Error("trailing blank line must appear exactly once")
			}
		})
	}
}

func TestApp_CommandsCanMutateRegistry(t *testing.T) {
	out := &recordingOutput{}
	app := newTestApp(t, &config.Config{}, out, &spyCommand{name: "list"})

	extra := &spyCommand{name: "extra"}
	if err := app.Add(extra); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, ok := app.Get("extra"); !ok {
		t.Error("programmatically added command should resolve")
	}

	names := app.CommandNames()
	if len(names) != 2 || names[0] != "extra" || names[1] != "list" {
		t.Errorf("CommandNames() = %v, want [extra list]", names)
	}

	app.Remove("extra")
	if _, ok := app.Get("extra"); ok {
		t.Error("removed command should not resolve")
	}
}
