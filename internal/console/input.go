// SPDX-License-Identifier: MPL-2.0

package console

import "strings"

// ArgvInput parses raw process arguments into positional arguments and
// named options. The first positional argument is the requested command
// name. Options are `--name`, `--name=value`, or clustered short flags
// (`-vh`); everything after a bare `--` is positional.
type ArgvInput struct {
	args    []string
	options map[string]string
}

// NewArgvInput parses argv (the process arguments without the program name).
func NewArgvInput(argv []string) *ArgvInput {
	in := &ArgvInput{options: make(map[string]string)}

	positionalOnly := false
	for _, token := range argv {
		switch {
		case positionalOnly:
			in.args = append(in.args, token)
		case token == "--":
			positionalOnly = true
		case strings.HasPrefix(token, "--"):
			name := token[2:]
			value := ""
			if eq := strings.Index(name, "="); eq >= 0 {
				name, value = name[:eq], name[eq+1:]
			}
			if name != "" {
				in.options[name] = value
			}
		case strings.HasPrefix(token, "-") && len(token) > 1:
			for _, r := range token[1:] {
				in.options[string(r)] = ""
			}
		default:
			in.args = append(in.args, token)
		}
	}

	return in
}

// FirstArgument returns the first positional argument, if any.
func (in *ArgvInput) FirstArgument() (string, bool) {
	return in.Argument(0)
}

// Argument returns the i-th positional argument, if present.
func (in *ArgvInput) Argument(i int) (string, bool) {
	if i < 0 || i >= len(in.args) {
		return "", false
	}
	return in.args[i], true
}

// HasOption reports whether any of the aliases was supplied.
func (in *ArgvInput) HasOption(aliases ...string) bool {
	for _, alias := range aliases {
		if _, ok := in.options[alias]; ok {
			return true
		}
	}
	return false
}

// Option returns the value of a named option, if supplied. Bare flags
// report an empty value.
func (in *ArgvInput) Option(name string) (string, bool) {
	value, ok := in.options[name]
	return value, ok
}
