// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"modcon-cli/internal/console"
)

// CacheClearCommand empties the application cache directory. The directory
// itself is kept (and created when missing).
type CacheClearCommand struct {
	base
}

// Name implements console.Command.
func (c *CacheClearCommand) Name() string { return "cache-clear" }

// Description implements console.Describer.
func (c *CacheClearCommand) Description() string { return "Empty the application cache directory" }

// Execute removes every entry under the configured cache directory.
func (c *CacheClearCommand) Execute(out console.Output) error {
	cacheDir := c.app.Config().CacheDir

	entries, err := os.ReadDir(cacheDir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(cacheDir, 0o755); err != nil {
			return fmt.Errorf("create cache directory: %w", err)
		}
		out.WriteLn(console.SuccessStyle.Render("Cache is empty: " + cacheDir))
		return nil
	}
	if err != nil {
		return fmt.Errorf("read cache directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(cacheDir, entry.Name())); err != nil {
			return fmt.Errorf("clear cache entry %s: %w", entry.Name(), err)
		}
		removed++
	}

	out.WriteLn(console.SuccessStyle.Render(fmt.Sprintf("Cache cleared: %d entries removed from %s", removed, cacheDir)))
	return nil
}

// Help implements console.Command.
func (c *CacheClearCommand) Help(out console.Output) error {
	writeHelp(out, "modcon cache-clear", c.Description())
	return nil
}
