// Package memory is an in-process bookmark store for local runs and tests.
// Documents are kept in their encoded form so that reads go through the same
// codec as the Redis store.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ekpss/quizapp/internal/bookmark"
	"github.com/ekpss/quizapp/internal/domain"
	"github.com/ekpss/quizapp/internal/logger"
)

var _ bookmark.Store = (*Store)(nil)

type entry struct {
	id   string
	data []byte
}

// Store keeps one ordered document list per user
type Store struct {
	mu      sync.RWMutex
	users   map[string][]entry // userID -> documents in insertion order
	failure error
	logger  logger.Logger
}

// NewStore creates an empty memory store
func NewStore(log logger.Logger) *Store {
	return &Store{
		users:  make(map[string][]entry),
		logger: log,
	}
}

// SetFailure makes every following call fail as unavailable with err.
// Passing nil restores normal behavior.
func (s *Store) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failure = err
}

// PutRaw stores data under id without validation
func (s *Store) PutRaw(userID, id string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[userID] = append(s.users[userID], entry{id: id, data: data})
}

// Count returns the number of stored documents of userID, malformed ones included
func (s *Store) Count(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users[userID])
}

// FindByIdentity returns the bookmarks of userID whose (text, testId) equals id
func (s *Store) FindByIdentity(_ context.Context, userID string, id domain.Identity) ([]domain.BookmarkRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, bookmark.Unavailable("find bookmarks", s.failure)
	}

	matches := []domain.BookmarkRecord{}
	for _, rec := range s.decodeAll(userID) {
		if domain.SameIdentity(rec, id) {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// Insert appends rec with a fresh id
func (s *Store) Insert(_ context.Context, userID string, rec domain.BookmarkRecord) (domain.BookmarkRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return domain.BookmarkRecord{}, bookmark.Unavailable("insert bookmark", s.failure)
	}

	rec.ID = uuid.NewString()
	rec.UserID = userID

	data, err := bookmark.EncodeDocument(rec)
	if err != nil {
		return domain.BookmarkRecord{}, err
	}

	s.users[userID] = append(s.users[userID], entry{id: rec.ID, data: data})
	return rec, nil
}

// DeleteAllMatching removes every bookmark of userID sharing id under one lock
func (s *Store) DeleteAllMatching(_ context.Context, userID string, id domain.Identity) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failure != nil {
		return 0, bookmark.Unavailable("delete bookmarks", s.failure)
	}

	entries := s.users[userID]
	kept := make([]entry, 0, len(entries))
	deleted := 0
	for _, e := range entries {
		rec, err := bookmark.DecodeDocument(e.id, userID, e.data)
		if err == nil && domain.SameIdentity(rec, id) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}

	s.users[userID] = kept
	return deleted, nil
}

// ListAll returns every well-formed bookmark of userID in insertion order
func (s *Store) ListAll(_ context.Context, userID string) ([]domain.BookmarkRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, bookmark.Unavailable("list bookmarks", s.failure)
	}

	return s.decodeAll(userID), nil
}

// ListBySubject returns the well-formed bookmarks of userID saved under subject
func (s *Store) ListBySubject(_ context.Context, userID, subject string) ([]domain.BookmarkRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.failure != nil {
		return nil, bookmark.Unavailable("list bookmarks by subject", s.failure)
	}

	records := []domain.BookmarkRecord{}
	for _, rec := range s.decodeAll(userID) {
		if rec.Subject == subject {
			records = append(records, rec)
		}
	}
	return records, nil
}

// Ping always succeeds unless a failure is set
func (s *Store) Ping(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.failure
}

// decodeAll must be called with the lock held
func (s *Store) decodeAll(userID string) []domain.BookmarkRecord {
	entries := s.users[userID]
	records := make([]domain.BookmarkRecord, 0, len(entries))
	for _, e := range entries {
		rec, err := bookmark.DecodeDocument(e.id, userID, e.data)
		if err != nil {
			s.logger.Warn("skipping malformed bookmark",
				logger.UserID(userID),
				logger.BookmarkID(e.id),
				logger.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records
}
