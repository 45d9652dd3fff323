// filepath: internal/services/bookmarks_service.go
package services

import (
	"context"
	"fmt"

	"bookmarkhub/internal/config"
	"bookmarkhub/internal/logging"
)

var _ BookmarksService = (*bookmarksService)(nil)

type bookmarksService struct {
	Config config.Provider
	Syncs  SyncCounter
}

// NewBookmarksService creates a new BookmarksService.
func NewBookmarksService(cfg config.Provider, syncs SyncCounter) *bookmarksService {
	return &bookmarksService{
		Config: cfg,
		Syncs:  syncs,
	}
}

// IsAcceptingNewSyncs is true when new syncs are enabled and the store is below max_syncs.
func (s *bookmarksService) IsAcceptingNewSyncs(ctx context.Context) (bool, error) {
	cfg, err := s.Config.Get()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrConfigurationUnavailable, err)
	}

	if !cfg.Status.AllowNewSyncs {
		return false, nil
	}
	if cfg.MaxSyncs == 0 {
		return true, nil
	}

	count, err := s.Syncs.CountSyncs(ctx)
	if err != nil {
		return false, err
	}

	if count >= cfg.MaxSyncs {
		logging.Log.Debugf("Sync limit reached (%d of %d), not accepting new syncs.", count, cfg.MaxSyncs)
		return false, nil
	}
	return true, nil
}
