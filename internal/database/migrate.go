package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	sqlfiles "mcq-quiz/database"
	"mcq-quiz/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// RunMigrations applies (or with DirectionDown reverts) the embedded schema.
func RunMigrations(ctx context.Context, db *sql.DB, driver, direction string) error {
	if direction != DirectionUp && direction != DirectionDown {
		return fmt.Errorf("unknown migration direction %q", direction)
	}
	files, err := sqlfiles.Migrations(driver)
	if err != nil {
		return err
	}
	if driver == "postgres" {
		return runPostgresMigrations(db, files, direction)
	}
	return runScriptMigrations(ctx, db, files, direction)
}

func runPostgresMigrations(db *sql.DB, files fs.FS, direction string) error {
	src, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("could not open migration source: %w", err)
	}
	target, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", target)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}

	if direction == DirectionUp {
		err = m.Up()
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("could not read migration version: %w", verr)
	}
	logger.Get().Info("Migrations completed successfully",
		zap.String("direction", direction), zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

// runScriptMigrations executes the *.up.sql (or *.down.sql in reverse) files
// statement by statement, recording applied versions in schema_migrations.
func runScriptMigrations(ctx context.Context, db *sql.DB, files fs.FS, direction string) error {
	if _, err := db.ExecContext(ctx, "CREATE TABLE schema_migrations (version VARCHAR2(255) PRIMARY KEY)"); err != nil &&
		!strings.Contains(err.Error(), "ORA-00955") {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}

	suffix := "." + direction + ".sql"
	names, err := fs.Glob(files, "*"+suffix)
	if err != nil {
		return err
	}
	sort.Strings(names)
	if direction == DirectionDown {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	}

	for _, name := range names {
		version := strings.TrimSuffix(name, suffix)
		applied, err := isApplied(ctx, db, version)
		if err != nil {
			return err
		}
		if applied == (direction == DirectionUp) {
			continue
		}

		content, err := fs.ReadFile(files, name)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		for _, stmt := range SplitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}

		if direction == DirectionUp {
			_, err = db.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (:1)", version)
		} else {
			_, err = db.ExecContext(ctx, "DELETE FROM schema_migrations WHERE version = :1", version)
		}
		if err != nil {
			return fmt.Errorf("could not record migration %s: %w", name, err)
		}
		logger.Get().Info("Executed migration", zap.String("file", name))
	}

	logger.Get().Info("Migrations completed successfully", zap.String("direction", direction))
	return nil
}

func isApplied(ctx context.Context, db *sql.DB, version string) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations WHERE version = :1", version).Scan(&count); err != nil {
		return false, fmt.Errorf("could not check migration %s: %w", version, err)
	}
	return count > 0, nil
}

// SplitStatements splits a script on ";" and drops empty statements. The
// Oracle driver rejects trailing semicolons and multi-statement strings.
func SplitStatements(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
