// filepath: internal/repository/migration_test.go
package repository

import (
	"path/filepath"
	"testing"

	"bookmarkhub/internal/config"
	"bookmarkhub/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnmigratedRepo(t *testing.T) *Repository {
	t.Helper()
	cfg := &config.Config{Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "schema.db")}}
	repo, err := NewRepository(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestValidateSchema(t *testing.T) {
	repo := newUnmigratedRepo(t)

	// 1. New DB should be invalid (needs migration)
	err := repo.ValidateSchema()
	assert.ErrorIs(t, err, shared.ErrSchemaOutdated)

	// 2. Apply Migrations
	require.NoError(t, repo.Migrate("up"))

	// 3. Verify Schema is now Valid
	assert.NoError(t, repo.ValidateSchema(), "DB should be valid after applying migrations")

	// 4. Rolling back makes it outdated again
	require.NoError(t, repo.Migrate("down"))
	assert.ErrorIs(t, repo.ValidateSchema(), shared.ErrSchemaOutdated)
}

func TestEnsureSchemaBootstrapped(t *testing.T) {
	t.Run("Fresh Database", func(t *testing.T) {
		repo := newUnmigratedRepo(t)

		err := repo.EnsureSchemaBootstrapped()
		assert.NoError(t, err)

		assert.NoError(t, repo.ValidateSchema(), "Fresh DB should be fully migrated after bootstrap")

		var tableName string
		err = repo.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='bookmarks'").Scan(&tableName)
		assert.NoError(t, err)
		assert.Equal(t, "bookmarks", tableName)
	})

	t.Run("Existing Database (Skip)", func(t *testing.T) {
		repo := newUnmigratedRepo(t)

		// A version table without the bookmarks table: bootstrap must not touch it.
		_, err := repo.DB.Exec("CREATE TABLE goose_db_version (id INTEGER PRIMARY KEY, version_id INTEGER, is_applied BOOLEAN, tstamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP);")
		require.NoError(t, err)

		err = repo.EnsureSchemaBootstrapped()
		assert.NoError(t, err)

		var count int
		err = repo.DB.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='bookmarks'").Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 0, count, "bookmarks table should not be created for an existing DB")
	})
}

func TestMigrate_UnknownCommand(t *testing.T) {
	repo := newUnmigratedRepo(t)
	assert.ErrorContains(t, repo.Migrate("sideways"), "unknown migration command")
}
