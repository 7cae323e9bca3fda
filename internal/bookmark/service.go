package bookmark

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/ekpss/quizapp/internal/domain"
	"github.com/ekpss/quizapp/internal/logger"
	"github.com/ekpss/quizapp/internal/projection"
)

// Service owns the bookmark rules on top of a Store: idempotent save,
// delete-all-matches remove, lenient existence checks.
//
// Every call takes the user explicitly. A blank user falls back to
// domain.DefaultUserID.
type Service struct {
	store  Store
	logger logger.Logger
}

// NewService creates a bookmark service.
func NewService(store Store, log logger.Logger) *Service {
	return &Service{store: store, logger: log}
}

// IsBookmarked reports whether q is saved for userID.
// A store failure is logged and reported as false.
func (s *Service) IsBookmarked(ctx context.Context, userID string, q domain.Question) bool {
	userID = domain.ResolveUserID(userID)
	if !q.Identity().Valid() {
		return false
	}

	matches, err := s.store.FindByIdentity(ctx, userID, q.Identity())
	if err != nil {
		s.logger.Warn("bookmark check failed, assuming not bookmarked",
			logger.UserID(userID),
			logger.TestID(q.TestID),
			logger.Error(err))
		return false
	}
	return len(matches) > 0
}

// Save bookmarks q under subject. Saving an already bookmarked question is a
// no-op. The check and the insert are two separate store calls, so concurrent
// saves can still create a duplicate; Remove cleans those up.
func (s *Service) Save(ctx context.Context, userID, subject string, q domain.Question) error {
	userID = domain.ResolveUserID(userID)
	if err := checkQuestion(q); err != nil {
		return err
	}
	if !utf8.ValidString(subject) {
		return fmt.Errorf("%w: subject is not valid UTF-8", ErrInvalidQuestion)
	}

	matches, err := s.store.FindByIdentity(ctx, userID, q.Identity())
	if err != nil {
		return fmt.Errorf("check bookmark: %w", err)
	}
	if len(matches) > 0 {
		s.logger.Debug("question already bookmarked",
			logger.UserID(userID),
			logger.TestID(q.TestID))
		return nil
	}

	rec, err := s.store.Insert(ctx, userID, domain.BookmarkRecord{
		UserID:   userID,
		Subject:  subject,
		Question: q,
	})
	if err != nil {
		return fmt.Errorf("insert bookmark: %w", err)
	}

	s.logger.Info("bookmark saved",
		logger.UserID(userID),
		logger.Subject(subject),
		logger.TestID(q.TestID),
		logger.BookmarkID(rec.ID))
	return nil
}

// Remove deletes every bookmark of userID matching q and returns the count.
// Removing a question that is not bookmarked succeeds with 0.
func (s *Service) Remove(ctx context.Context, userID string, q domain.Question) (int, error) {
	userID = domain.ResolveUserID(userID)
	if err := checkQuestion(q); err != nil {
		return 0, err
	}

	deleted, err := s.store.DeleteAllMatching(ctx, userID, q.Identity())
	if err != nil {
		return 0, fmt.Errorf("delete bookmarks: %w", err)
	}

	if deleted > 1 {
		s.logger.Warn("removed duplicate bookmarks",
			logger.UserID(userID),
			logger.TestID(q.TestID),
			logger.Int("deleted", deleted))
	} else {
		s.logger.Info("bookmark removed",
			logger.UserID(userID),
			logger.TestID(q.TestID),
			logger.Int("deleted", deleted))
	}
	return deleted, nil
}

// Toggle flips the bookmark state of q starting from the caller's last known
// state and returns the new state. On error the prior state is returned.
func (s *Service) Toggle(ctx context.Context, userID, subject string, q domain.Question, currentlyBookmarked bool) (bool, error) {
	if currentlyBookmarked {
		if _, err := s.Remove(ctx, userID, q); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := s.Save(ctx, userID, subject, q); err != nil {
		return false, err
	}
	return true, nil
}

// ListForUser returns all bookmarks of userID. Malformed documents are
// skipped by the store; only an unreachable store is an error.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.BookmarkRecord, error) {
	userID = domain.ResolveUserID(userID)

	records, err := s.store.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return records, nil
}

// ListForSubject returns the bookmarks of userID saved under subject.
func (s *Service) ListForSubject(ctx context.Context, userID, subject string) ([]domain.BookmarkRecord, error) {
	userID = domain.ResolveUserID(userID)

	records, err := s.store.ListBySubject(ctx, userID, subject)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks by subject: %w", err)
	}
	return records, nil
}

// Annotate fetches the user's bookmarks once and maps each index of questions
// to its bookmark flag.
func (s *Service) Annotate(ctx context.Context, userID string, questions []domain.Question) (map[int]bool, error) {
	records, err := s.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return projection.Project(questions, records), nil
}

// checkQuestion rejects identities that would not match themselves once stored.
func checkQuestion(q domain.Question) error {
	if !q.Identity().Valid() {
		return fmt.Errorf("%w: question text and testId must be valid UTF-8", ErrInvalidQuestion)
	}
	return nil
}
