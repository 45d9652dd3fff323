// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"bookmarkhub/internal/models"
)

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo(ctx context.Context) (models.Info, error)
}

// BookmarksService reports on the bookmark sync store.
type BookmarksService interface {
	// IsAcceptingNewSyncs reports whether new sync registrations are currently allowed.
	IsAcceptingNewSyncs(ctx context.Context) (bool, error)
}

// SyncCounter is the storage the bookmarks service needs.
type SyncCounter interface {
	CountSyncs(ctx context.Context) (int64, error)
}
