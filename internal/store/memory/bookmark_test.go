package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekpss/quizapp/internal/bookmark"
	"github.com/ekpss/quizapp/internal/domain"
	"github.com/ekpss/quizapp/internal/logger"
)

func newStore() *Store {
	return NewStore(logger.New("error", false))
}

func TestInsertFindDelete(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	q := domain.Question{Text: "Q?", Options: []string{"a", "b"}, Answer: "a", TestID: "t1"}

	for i := 0; i < 3; i++ {
		_, err := s.Insert(ctx, "u1", domain.BookmarkRecord{Subject: "Tarih", Question: q})
		require.NoError(t, err)
	}

	found, err := s.FindByIdentity(ctx, "u1", q.Identity())
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.NotEqual(t, found[0].ID, found[1].ID)

	deleted, err := s.DeleteAllMatching(ctx, "u1", q.Identity())
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)
	assert.Zero(t, s.Count("u1"))
}

func TestListSkipsMalformedDocuments(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	s.PutRaw("u1", "bad", []byte(`{"question":"x"}`))
	_, err := s.Insert(ctx, "u1", domain.BookmarkRecord{Subject: "Tarih", Question: domain.Question{Text: "ok", TestID: "t1"}})
	require.NoError(t, err)

	all, err := s.ListAll(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ok", all[0].Question.Text)

	bySubject, err := s.ListBySubject(ctx, "u1", "Tarih")
	require.NoError(t, err)
	assert.Len(t, bySubject, 1)

	// Malformed documents are never matched, so remove leaves them alone
	deleted, err := s.DeleteAllMatching(ctx, "u1", domain.Identity{Text: "x"})
	require.NoError(t, err)
	assert.Zero(t, deleted)
	assert.Equal(t, 2, s.Count("u1"))
}

func TestSetFailure(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	s.SetFailure(errors.New("connection refused"))

	_, err := s.ListAll(ctx, "u1")
	assert.ErrorIs(t, err, bookmark.ErrStoreUnavailable)
	_, err = s.Insert(ctx, "u1", domain.BookmarkRecord{})
	assert.ErrorIs(t, err, bookmark.ErrStoreUnavailable)
	assert.Error(t, s.Ping(ctx))

	s.SetFailure(nil)
	_, err = s.ListAll(ctx, "u1")
	assert.NoError(t, err)
}
