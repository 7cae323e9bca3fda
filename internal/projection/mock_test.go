package projection

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ekpss/quizapp/internal/domain"
)

type mockBookmarks struct {
	mock.Mock
}

func (m *mockBookmarks) ListForUser(ctx context.Context, userID string) ([]domain.BookmarkRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookmarkRecord), args.Error(1)
}

func (m *mockBookmarks) ListForSubject(ctx context.Context, userID, subject string) ([]domain.BookmarkRecord, error) {
	args := m.Called(ctx, userID, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookmarkRecord), args.Error(1)
}

func (m *mockBookmarks) Toggle(ctx context.Context, userID, subject string, q domain.Question, current bool) (bool, error) {
	args := m.Called(ctx, userID, subject, q, current)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookmarks) Remove(ctx context.Context, userID string, q domain.Question) (int, error) {
	args := m.Called(ctx, userID, q)
	return args.Int(0), args.Error(1)
}
