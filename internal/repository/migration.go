// filepath: internal/repository/migration.go
package repository

import (
	"database/sql"
	"fmt"

	"bookmarkhub/internal/db/migrations"
	"bookmarkhub/internal/logging"
	"bookmarkhub/internal/shared"

	"github.com/pressly/goose/v3"
)

// The embedded FS is the migration root.
const migrationsDir = "."

func setupGoose() error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(logging.Log)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// Migrate runs a goose command ("up", "down" or "status") against the database.
func (s *Repository) Migrate(command string) error {
	if err := setupGoose(); err != nil {
		return err
	}

	var err error
	switch command {
	case "up":
		err = goose.Up(s.DB, migrationsDir)
	case "down":
		err = goose.Down(s.DB, migrationsDir)
	case "status":
		err = goose.Status(s.DB, migrationsDir)
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// EnsureSchemaBootstrapped migrates a fresh database to the latest version.
// Databases that already carry goose version info are left for "migrate up".
func (s *Repository) EnsureSchemaBootstrapped() error {
	var name string
	err := s.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&name)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to inspect database: %w", err)
	}

	logging.Log.Info("Fresh database detected, applying all migrations.")
	return s.Migrate("up")
}

// ValidateSchema checks that the database is at the latest migration version.
func (s *Repository) ValidateSchema() error {
	if err := setupGoose(); err != nil {
		return err
	}

	current, err := goose.GetDBVersion(s.DB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	all, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("failed to collect migrations: %w", err)
	}
	last, err := all.Last()
	if err != nil {
		return fmt.Errorf("failed to determine latest migration: %w", err)
	}

	if current < last.Version {
		return fmt.Errorf("%w (current: %d, expected: %d), run 'bookmarkhub migrate up'",
			shared.ErrSchemaOutdated, current, last.Version)
	}
	return nil
}
