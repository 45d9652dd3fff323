// filepath: internal/repository/sync_repo.go
package repository

import (
	"context"
	"fmt"
)

// CountSyncs returns the number of sync records currently stored.
func (s *Repository) CountSyncs(ctx context.Context) (int64, error) {
	query, args, err := s.Builder.Select("COUNT(*)").From("bookmarks").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int64
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count syncs: %w", err)
	}
	return count, nil
}
