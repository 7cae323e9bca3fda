package bookmark

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ekpss/quizapp/internal/domain"
	"github.com/ekpss/quizapp/internal/logger"
)

var errDown = Unavailable("test", errors.New("connection refused"))

func testQuestion() domain.Question {
	return domain.Question{Text: "Q?", Options: []string{"a", "b"}, Answer: "a", TestID: "t1"}
}

func TestIsBookmarked(t *testing.T) {
	ctx := context.Background()
	q := testQuestion()

	t.Run("true when a match exists", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("FindByIdentity", ctx, "u1", q.Identity()).
			Return([]domain.BookmarkRecord{{ID: "b1", Question: q}}, nil).Once()

		svc := NewService(mockStore, logger.Nop())
		require.True(t, svc.IsBookmarked(ctx, "u1", q))
		mockStore.AssertExpectations(t)
	})

	t.Run("false when no match", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("FindByIdentity", ctx, "u1", q.Identity()).Return([]domain.BookmarkRecord{}, nil).Once()

		svc := NewService(mockStore, logger.Nop())
		require.False(t, svc.IsBookmarked(ctx, "u1", q))
	})

	t.Run("store failure reads as false", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("FindByIdentity", ctx, "u1", q.Identity()).Return(nil, errDown).Once()

		svc := NewService(mockStore, logger.Nop())
		require.False(t, svc.IsBookmarked(ctx, "u1", q))
	})

	t.Run("blank user falls back to default", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("FindByIdentity", ctx, domain.DefaultUserID, q.Identity()).Return([]domain.BookmarkRecord{}, nil).Once()

		svc := NewService(mockStore, logger.Nop())
		require.False(t, svc.IsBookmarked(ctx, "  ", q))
		mockStore.AssertExpectations(t)
	})
}

func TestSave(t *testing.T) {
	ctx := context.Background()
	q := testQuestion()

	t.Run("inserts when absent", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("FindByIdentity", ctx, "u1", q.Identity()).Return([]domain.BookmarkRecord{}, nil).Once()
		mockStore.On("Insert", ctx, "u1", domain.BookmarkRecord{UserID: "u1", Subject: "Matematik", Question: q}).
			Return(domain.BookmarkRecord{ID: "b1", UserID: "u1", Subject: "Matematik", Question: q}, nil).Once()

		svc := NewService(mockStore, logger.Nop())
		require.NoError(t, svc.Save(ctx, "u1", "Matematik", q))
		mockStore.AssertExpectations(t)
	})

	t.Run("no-op when already saved", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("FindByIdentity", ctx, "u1", q.Identity()).
			Return([]domain.BookmarkRecord{{ID: "b1", Question: q}}, nil).Once()

		svc := NewService(mockStore, logger.Nop())
		require.NoError(t, svc.Save(ctx, "u1", "Matematik", q))
		mockStore.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("check failure aborts the save", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("FindByIdentity", ctx, "u1", q.Identity()).Return(nil, errDown).Once()

		svc := NewService(mockStore, logger.Nop())
		err := svc.Save(ctx, "u1", "Matematik", q)
		require.ErrorIs(t, err, ErrStoreUnavailable)
		mockStore.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("insert failure propagates", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("FindByIdentity", ctx, "u1", q.Identity()).Return([]domain.BookmarkRecord{}, nil).Once()
		mockStore.On("Insert", ctx, "u1", mock.Anything).Return(domain.BookmarkRecord{}, errDown).Once()

		svc := NewService(mockStore, logger.Nop())
		require.ErrorIs(t, svc.Save(ctx, "u1", "Matematik", q), ErrStoreUnavailable)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	q := testQuestion()

	t.Run("returns deleted count", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("DeleteAllMatching", ctx, "u1", q.Identity()).Return(2, nil).Once()

		svc := NewService(mockStore, logger.Nop())
		deleted, err := svc.Remove(ctx, "u1", q)
		require.NoError(t, err)
		require.Equal(t, 2, deleted)
	})

	t.Run("nothing to remove is not an error", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("DeleteAllMatching", ctx, "u1", q.Identity()).Return(0, nil).Once()

		svc := NewService(mockStore, logger.Nop())
		deleted, err := svc.Remove(ctx, "u1", q)
		require.NoError(t, err)
		require.Zero(t, deleted)
	})

	t.Run("failure propagates", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("DeleteAllMatching", ctx, "u1", q.Identity()).Return(0, errDown).Once()

		svc := NewService(mockStore, logger.Nop())
		_, err := svc.Remove(ctx, "u1", q)
		require.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestToggle(t *testing.T) {
	ctx := context.Background()
	q := testQuestion()

	t.Run("saves when not bookmarked", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("FindByIdentity", ctx, "u1", q.Identity()).Return([]domain.BookmarkRecord{}, nil).Once()
		mockStore.On("Insert", ctx, "u1", mock.Anything).Return(domain.BookmarkRecord{ID: "b1"}, nil).Once()

		svc := NewService(mockStore, logger.Nop())
		state, err := svc.Toggle(ctx, "u1", "Matematik", q, false)
		require.NoError(t, err)
		require.True(t, state)
		mockStore.AssertExpectations(t)
	})

	t.Run("removes when bookmarked", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("DeleteAllMatching", ctx, "u1", q.Identity()).Return(1, nil).Once()

		svc := NewService(mockStore, logger.Nop())
		state, err := svc.Toggle(ctx, "u1", "Matematik", q, true)
		require.NoError(t, err)
		require.False(t, state)
		mockStore.AssertExpectations(t)
	})

	t.Run("keeps prior state on error", func(t *testing.T) {
		mockStore := new(MockStore)
		mockStore.On("DeleteAllMatching", ctx, "u1", q.Identity()).Return(0, errDown).Once()
		mockStore.On("FindByIdentity", ctx, "u1", q.Identity()).Return(nil, errDown).Once()

		svc := NewService(mockStore, logger.Nop())
		state, err := svc.Toggle(ctx, "u1", "Matematik", q, true)
		require.Error(t, err)
		require.True(t, state)

		state, err = svc.Toggle(ctx, "u1", "Matematik", q, false)
		require.Error(t, err)
		require.False(t, state)
	})
}

func TestListAndAnnotate(t *testing.T) {
	ctx := context.Background()
	q1 := testQuestion()
	q2 := domain.Question{Text: "Other?", TestID: "t1"}
	records := []domain.BookmarkRecord{{ID: "b1", Subject: "Matematik", Question: q1}}

	mockStore := new(MockStore)
	mockStore.On("ListAll", ctx, domain.DefaultUserID).Return(records, nil)
	mockStore.On("ListBySubject", ctx, domain.DefaultUserID, "Matematik").Return(records, nil).Once()

	svc := NewService(mockStore, logger.Nop())

	all, err := svc.ListForUser(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)

	bySubject, err := svc.ListForSubject(ctx, "", "Matematik")
	require.NoError(t, err)
	require.Equal(t, records, bySubject)

	flags, err := svc.Annotate(ctx, "", []domain.Question{q1, q2})
	require.NoError(t, err)
	require.Equal(t, map[int]bool{0: true, 1: false}, flags)
	mockStore.AssertExpectations(t)
}

func TestListFailurePropagates(t *testing.T) {
	ctx := context.Background()
	mockStore := new(MockStore)
	mockStore.On("ListAll", ctx, "u1").Return(nil, errDown)

	svc := NewService(mockStore, logger.Nop())

	_, err := svc.ListForUser(ctx, "u1")
	require.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.Annotate(ctx, "u1", []domain.Question{testQuestion()})
	require.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestInvalidUTF8NeverReachesTheStore(t *testing.T) {
	ctx := context.Background()
	bad := domain.Question{Text: "caf\xe9?", TestID: "t1"}

	mockStore := new(MockStore)
	svc := NewService(mockStore, logger.Nop())

	require.ErrorIs(t, svc.Save(ctx, "u1", "Tarih", bad), ErrInvalidQuestion)
	require.ErrorIs(t, svc.Save(ctx, "u1", "T\xfcrk\xe7e", testQuestion()), ErrInvalidQuestion)

	_, err := svc.Remove(ctx, "u1", bad)
	require.ErrorIs(t, err, ErrInvalidQuestion)

	state, err := svc.Toggle(ctx, "u1", "Tarih", bad, false)
	require.ErrorIs(t, err, ErrInvalidQuestion)
	require.False(t, state)

	require.False(t, svc.IsBookmarked(ctx, "u1", bad))

	mockStore.AssertNotCalled(t, "FindByIdentity", mock.Anything, mock.Anything, mock.Anything)
	mockStore.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
	mockStore.AssertNotCalled(t, "DeleteAllMatching", mock.Anything, mock.Anything, mock.Anything)
}
