package redis

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ekpss/quizapp/internal/bookmark"
	"github.com/ekpss/quizapp/internal/domain"
	"github.com/ekpss/quizapp/internal/logger"
)

var _ bookmark.Store = (*Store)(nil)

// FindByIdentity returns the bookmarks of userID whose (text, testId) equals id
func (s *Store) FindByIdentity(ctx context.Context, userID string, id domain.Identity) ([]domain.BookmarkRecord, error) {
	ids, err := s.client.SMembers(ctx, IdentityIndexKey(userID, id)).Result()
	if err != nil {
		return nil, bookmark.Unavailable("find bookmarks", err)
	}

	records, err := s.loadBookmarks(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	// Index hits are hashes; compare the real fields
	matches := records[:0]
	for _, rec := range records {
		if domain.SameIdentity(rec, id) {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// Insert stores rec as a new document with all its index entries in one transaction
func (s *Store) Insert(ctx context.Context, userID string, rec domain.BookmarkRecord) (domain.BookmarkRecord, error) {
	rec.ID = uuid.NewString()
	rec.UserID = userID

	data, err := bookmark.EncodeDocument(rec)
	if err != nil {
		return domain.BookmarkRecord{}, err
	}

	member := redis.Z{Score: float64(s.now().UnixNano()), Member: rec.ID}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, BookmarkKey(userID, rec.ID), data, 0)
		pipe.ZAdd(ctx, UserBookmarksKey(userID), member)
		pipe.SAdd(ctx, IdentityIndexKey(userID, rec.Identity()), rec.ID)
		pipe.ZAdd(ctx, SubjectIndexKey(userID, rec.Subject), member)
		return nil
	})
	if err != nil {
		return domain.BookmarkRecord{}, bookmark.Unavailable("insert bookmark", err)
	}

	return rec, nil
}

// DeleteAllMatching removes every bookmark sharing id, documents and index entries, in one MULTI/EXEC.
// The count is the number of documents this call deleted.
func (s *Store) DeleteAllMatching(ctx context.Context, userID string, id domain.Identity) (int, error) {
	matches, err := s.FindByIdentity(ctx, userID, id)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, nil
	}

	// Count what EXEC actually removed; a concurrent remove may have won the race
	dels := make([]*redis.IntCmd, 0, len(matches))
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, rec := range matches {
			dels = append(dels, pipe.Del(ctx, BookmarkKey(userID, rec.ID)))
			pipe.ZRem(ctx, UserBookmarksKey(userID), rec.ID)
			pipe.SRem(ctx, IdentityIndexKey(userID, id), rec.ID)
			pipe.ZRem(ctx, SubjectIndexKey(userID, rec.Subject), rec.ID)
		}
		return nil
	})
	if err != nil {
		return 0, bookmark.Unavailable("delete bookmarks", err)
	}

	deleted := 0
	for _, cmd := range dels {
		deleted += int(cmd.Val())
	}
	return deleted, nil
}

// ListAll returns every well-formed bookmark of userID in creation order
func (s *Store) ListAll(ctx context.Context, userID string) ([]domain.BookmarkRecord, error) {
	ids, err := s.client.ZRange(ctx, UserBookmarksKey(userID), 0, -1).Result()
	if err != nil {
		return nil, bookmark.Unavailable("list bookmarks", err)
	}
	return s.loadBookmarks(ctx, userID, ids)
}

// ListBySubject returns the well-formed bookmarks of userID saved under subject
func (s *Store) ListBySubject(ctx context.Context, userID, subject string) ([]domain.BookmarkRecord, error) {
	ids, err := s.client.ZRange(ctx, SubjectIndexKey(userID, subject), 0, -1).Result()
	if err != nil {
		return nil, bookmark.Unavailable("list bookmarks by subject", err)
	}

	records, err := s.loadBookmarks(ctx, userID, ids)
	if err != nil {
		return nil, err
	}

	filtered := records[:0]
	for _, rec := range records {
		if rec.Subject == subject {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// loadBookmarks fetches documents in one MGET, skipping missing and malformed ones
func (s *Store) loadBookmarks(ctx context.Context, userID string, ids []string) ([]domain.BookmarkRecord, error) {
	if len(ids) == 0 {
		return []domain.BookmarkRecord{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = BookmarkKey(userID, id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, bookmark.Unavailable("load bookmarks", err)
	}

	records := make([]domain.BookmarkRecord, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Dangling index entry
			continue
		}

		rec, err := bookmark.DecodeDocument(ids[i], userID, []byte(raw))
		if err != nil {
			s.logger.Warn("skipping malformed bookmark",
				logger.UserID(userID),
				logger.BookmarkID(ids[i]),
				logger.Error(err))
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}
