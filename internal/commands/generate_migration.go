// SPDX-License-Identifier: MPL-2.0

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"modcon-cli/internal/console"
)

// migrationSkeleton is the body of a freshly generated migration file.
const migrationSkeleton = `-- +migrate Up

-- +migrate Down
`

// GenerateMigrationCommand writes a timestamped migration skeleton into the
// configured migrations directory.
type GenerateMigrationCommand struct {
	base

	// now is overridable for deterministic file names in tests.
	now func() time.Time
}

// Name implements console.Command.
func (c *GenerateMigrationCommand) Name() string { return "generate-migration" }

// Description implements console.Describer.
func (c *GenerateMigrationCommand) Description() string {
	return "Create a timestamped migration skeleton"
}

// Execute writes <timestamp>_<label>.sql with empty Up/Down sections.
func (c *GenerateMigrationCommand) Execute(out console.Output) error {
	cfg := c.app.Config()

	label := "migration"
	if arg, ok := c.input.Argument(1); ok {
		label = slugify(arg)
	}

	if err := os.MkdirAll(cfg.MigrationsDir, 0o755); err != nil {
		return fmt.Errorf("create migrations directory: %w", err)
	}

	now := time.Now
	if c.now != nil {
		now = c.now
	}
	name := fmt.Sprintf("%s_%s.sql", now().UTC().Format("20060102150405"), label)
	path := filepath.Join(cfg.MigrationsDir, name)

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("migration %s already exists", name)
	}
	if err := os.WriteFile(path, []byte(migrationSkeleton), 0o644); err != nil {
		return fmt.Errorf("write migration %s: %w", name, err)
	}

	out.WriteLn(console.SuccessStyle.Render("Created " + path))
	return nil
}

// Help implements console.Command.
func (c *GenerateMigrationCommand) Help(out console.Output) error {
	writeHelp(out, "modcon generate-migration [label]", c.Description())
	return nil
}

// slugify reduces a label to lowercase letters, digits, and underscores.
func slugify(label string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	slug := strings.Trim(sb.String(), "_")
	if slug == "" {
		return "migration"
	}
	return slug
}
