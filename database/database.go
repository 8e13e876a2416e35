// Package database holds the versioned schema migrations, one directory per
// supported driver, embedded into the binaries that apply them.
package database

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed migrations/postgres/*.sql migrations/oracle/*.sql
var migrations embed.FS

// Migrations returns the migration files for driver, rooted at their directory.
func Migrations(driver string) (fs.FS, error) {
	switch driver {
	case "postgres", "oracle":
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
	return fs.Sub(migrations, "migrations/"+driver)
}
