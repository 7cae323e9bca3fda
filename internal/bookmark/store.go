package bookmark

import (
	"context"

	"github.com/ekpss/quizapp/internal/domain"
)

// Store is the narrow view of the document store the service needs.
// Every operation is scoped to one user's bookmark collection and fails with
// ErrStoreUnavailable on transport or auth errors. Stores never retry.
type Store interface {
	// FindByIdentity returns every record whose (text, testId) equals id.
	FindByIdentity(ctx context.Context, userID string, id domain.Identity) ([]domain.BookmarkRecord, error)

	// Insert appends rec unconditionally and returns it with its assigned ID.
	// Uniqueness is NOT enforced here.
	Insert(ctx context.Context, userID string, rec domain.BookmarkRecord) (domain.BookmarkRecord, error)

	// DeleteAllMatching removes every record sharing id in one atomic batch
	// and returns how many were removed.
	DeleteAllMatching(ctx context.Context, userID string, id domain.Identity) (int, error)

	// ListAll returns all well-formed records of the user.
	ListAll(ctx context.Context, userID string) ([]domain.BookmarkRecord, error)

	// ListBySubject returns the well-formed records saved under subject.
	ListBySubject(ctx context.Context, userID, subject string) ([]domain.BookmarkRecord, error)
}
