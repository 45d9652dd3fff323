// filepath: internal/repository/repository_test.go
package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"bookmarkhub/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "test_service.db")},
	}

	repo, err := NewRepository(cfg)
	if err != nil {
		t.Fatalf("Failed to create new repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	if err := repo.Migrate("up"); err != nil {
		t.Fatalf("Failed to apply test migrations: %v", err)
	}
	return repo
}

func insertSyncs(t *testing.T, repo *Repository, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := repo.DB.Exec("INSERT INTO bookmarks (id, bookmarks, version) VALUES (?, ?, ?)",
			fmt.Sprintf("sync%03d", i), "encrypted-payload", "1.0.0")
		require.NoError(t, err)
	}
}

func TestNewRepository(t *testing.T) {
	repo := setupTestDB(t)
	assert.NotNil(t, repo.DB)
	assert.NoError(t, repo.DB.Ping())
}

func TestCountSyncs(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	count, err := repo.CountSyncs(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	insertSyncs(t, repo, 3)

	count, err = repo.CountSyncs(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCountSyncs_CancelledContext(t *testing.T) {
	repo := setupTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.CountSyncs(ctx)
	assert.Error(t, err)
}

func TestCountSyncs_MissingTable(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "unmigrated.db")},
	}
	repo, err := NewRepository(cfg)
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.CountSyncs(context.Background())
	assert.ErrorContains(t, err, "failed to count syncs")
}
