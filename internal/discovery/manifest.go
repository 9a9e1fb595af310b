// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"strings"

	"modcon-cli/internal/console"
)

// factories is the command construction manifest: normalized command name to
// factory. Populated at init time by self-registering command packages; the
// directory scan only selects which entries get instantiated.
var factories = make(map[string]console.Factory)

// Register adds a command factory under name. Meant to be called from init
// functions of the packages that define commands; registering the same name
// twice is a programming error and panics, matching the driver-registration
// idiom.
func Register(name string, factory console.Factory) {
	key := console.NormalizeName(name)
	if factory == nil {
		panic("discovery: Register called with nil factory for " + name)
	}
	if _, dup := factories[key]; dup {
		panic(fmt.Sprintf("discovery: factory %q registered twice", key))
	}
	factories[key] = factory
}

// factoryFor looks up the factory for a derived command key.
func factoryFor(key string) (console.Factory, bool) {
	f, ok := factories[key]
	return f, ok
}

// CommandKey derives the manifest key for a command file name. A file
// matches when its base name, extension stripped, ends in "command"
// (case-insensitive). The key is the lowercased remainder with a trailing
// separator dropped and underscores normalized to hyphens, so
// "CacheClearCommand.txt", "cache_clear_command.sql" and
// "cache-clearcommand.x" all derive "cache-clear".
func CommandKey(fileName string) (string, bool) {
	base := fileName
	if dot := strings.LastIndex(base, "."); dot >= 0 {
		base = base[:dot]
	}

	base = strings.ToLower(base)
	if !strings.HasSuffix(base, "command") {
		return "", false
	}

	key := strings.TrimSuffix(base, "command")
	key = strings.TrimRight(key, "-_")
	key = strings.ReplaceAll(key, "_", "-")
	return key, true
}
