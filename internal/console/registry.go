// SPDX-License-Identifier: MPL-2.0

package console

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DuplicateCommandError is returned when two commands share a name. This is
// a fatal configuration error: the shell refuses to start with an ambiguous
// command set rather than pick a winner by load order.
type DuplicateCommandError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("command %q is already registered", e.Name)
}

// Registry is the uniquely-keyed collection of all known commands. Keys are
// case-normalized names. The enumeration order for listings is established
// once, by Sort, after the load phase completes.
type Registry struct {
	commands map[string]Command
	sorted   []string
	defName  string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// NormalizeName case-normalizes a command name for use as a registry key.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add registers a command under its normalized name. Registering a second
// command with an existing name fails with DuplicateCommandError and leaves
// the first registration intact.
func (r *Registry) Add(cmd Command) error {
	key := NormalizeName(cmd.Name())
	if _, exists := r.commands[key]; exists {
		return &DuplicateCommandError{Name: key}
	}
	r.commands[key] = cmd
	r.sorted = nil
	return nil
}

// Remove drops the named command if present. Removing an absent name is a
// no-op, not an error.
func (r *Registry) Remove(name string) {
	key := NormalizeName(name)
	if _, exists := r.commands[key]; !exists {
		return
	}
	delete(r.commands, key)
	r.sorted = nil
}

// Get returns the command registered under name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[NormalizeName(name)]
	return cmd, ok
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

// Sort fixes the enumeration order to ascending lexicographic key order.
// Called once after loading; Add and Remove invalidate the cached order so
// programmatic mutation keeps Names and All consistent.
func (r *Registry) Sort() {
	keys := maps.Keys(r.commands)
	slices.Sort(keys)
	r.sorted = keys
}

// Names returns the registered command names in ascending order.
func (r *Registry) Names() []string {
	if r.sorted == nil {
		r.Sort()
	}
	return slices.Clone(r.sorted)
}

// All returns all commands in ascending name order.
func (r *Registry) All() []Command {
	names := r.Names()
	cmds := make([]Command, 0, len(names))
	for _, name := range names {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

// SetDefault records which already-registered command runs when no name is
// supplied. The default is stored as a lookup key, not a live reference, so
// a later Remove of that command cannot leave the registry dangling. No
// registration check is performed here.
func (r *Registry) SetDefault(name string) {
	r.defName = NormalizeName(name)
}

// DefaultName returns the configured default command key, empty when unset.
func (r *Registry) DefaultName() string {
	return r.defName
}

// Default resolves the default command against the registry at use time.
func (r *Registry) Default() (Command, bool) {
	if r.defName == "" {
		return nil, false
	}
	cmd, ok := r.commands[r.defName]
	return cmd, ok
}
