// filepath: internal/services/info_service.go
package services

import (
	"context"
	"fmt"

	"bookmarkhub/internal/config"
	"bookmarkhub/internal/models"
	"bookmarkhub/internal/shared"
)

var _ InfoService = (*infoService)(nil)

type infoService struct {
	Config    config.Provider
	Bookmarks BookmarksService
}

// NewInfoService creates a new InfoService.
func NewInfoService(cfg config.Provider, bookmarks BookmarksService) *infoService {
	return &infoService{
		Config:    cfg,
		Bookmarks: bookmarks,
	}
}

// GetInfo reports the service status from the current configuration and a
// live acceptance check. Errors from the check are returned without retry.
func (s *infoService) GetInfo(ctx context.Context) (models.Info, error) {
	cfg, err := s.Config.Get()
	if err != nil {
		return models.Info{}, fmt.Errorf("%w: %w", ErrConfigurationUnavailable, err)
	}

	checkCtx := ctx
	if cfg.AcceptanceTimeout > 0 {
		var cancel context.CancelFunc
		checkCtx, cancel = context.WithTimeout(ctx, cfg.AcceptanceTimeout)
		defer cancel()
	}

	accepting, err := s.Bookmarks.IsAcceptingNewSyncs(checkCtx)
	if err != nil {
		return models.Info{}, fmt.Errorf("%w: %w", ErrAcceptanceCheckFailed, err)
	}

	status := models.APIStatusOffline
	if cfg.Status.Online {
		status = models.APIStatusOnline
	}

	return models.Info{
		Status:            status,
		Message:           shared.StripScriptsFromHTML(cfg.Status.Message),
		Version:           cfg.Version,
		MaxSyncSize:       cfg.MaxSyncSizeBytes,
		AcceptingNewSyncs: accepting,
		Location:          cfg.Location,
	}, nil
}
