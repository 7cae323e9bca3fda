package bookmark

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ekpss/quizapp/internal/domain"
)

// MockStore is a test double for the bookmark store.
type MockStore struct {
	mock.Mock
}

var _ Store = (*MockStore)(nil)

func (m *MockStore) FindByIdentity(ctx context.Context, userID string, id domain.Identity) ([]domain.BookmarkRecord, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookmarkRecord), args.Error(1)
}

func (m *MockStore) Insert(ctx context.Context, userID string, rec domain.BookmarkRecord) (domain.BookmarkRecord, error) {
	args := m.Called(ctx, userID, rec)
	return args.Get(0).(domain.BookmarkRecord), args.Error(1)
}

func (m *MockStore) DeleteAllMatching(ctx context.Context, userID string, id domain.Identity) (int, error) {
	args := m.Called(ctx, userID, id)
	return args.Int(0), args.Error(1)
}

func (m *MockStore) ListAll(ctx context.Context, userID string) ([]domain.BookmarkRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookmarkRecord), args.Error(1)
}

func (m *MockStore) ListBySubject(ctx context.Context, userID, subject string) ([]domain.BookmarkRecord, error) {
	args := m.Called(ctx, userID, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookmarkRecord), args.Error(1)
}
