// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"fmt"

	"bookmarkhub/internal/config"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // SQLite driver
)

// Repository provides access to the sync store.
type Repository struct {
	DB      *sql.DB
	Builder squirrel.StatementBuilderType // SQL Query Builder
}

// NewRepository opens the SQLite database configured in cfg.
func NewRepository(cfg *config.Config) (*Repository, error) {
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection, SQLite has a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Close closes the database connection.
func (s *Repository) Close() error {
	return s.DB.Close()
}
