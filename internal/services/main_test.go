package services

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// --- MOCK BOOKMARKS SERVICE ---
type MockBookmarksService struct {
	mock.Mock
}

var _ BookmarksService = (*MockBookmarksService)(nil)

func (m *MockBookmarksService) IsAcceptingNewSyncs(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// --- MOCK SYNC COUNTER ---
type MockSyncCounter struct {
	mock.Mock
}

var _ SyncCounter = (*MockSyncCounter)(nil)

func (m *MockSyncCounter) CountSyncs(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
