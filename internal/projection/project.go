// Package projection derives per-screen bookmark state from the latest
// bookmark listing.
//
// Project is what the server uses to flag a question listing. QuizView and
// SavedView hold the state of one client screen (the quiz and the saved
// questions list) for Go clients embedding the bookmark service; the HTTP
// server itself is stateless and never constructs them.
package projection

import (
	"context"

	"github.com/ekpss/quizapp/internal/domain"
)

// Bookmarks is the subset of the bookmark service a view needs.
type Bookmarks interface {
	ListForUser(ctx context.Context, userID string) ([]domain.BookmarkRecord, error)
	ListForSubject(ctx context.Context, userID, subject string) ([]domain.BookmarkRecord, error)
	Toggle(ctx context.Context, userID, subject string, q domain.Question, currentlyBookmarked bool) (bool, error)
	Remove(ctx context.Context, userID string, q domain.Question) (int, error)
}

// Project maps every index of questions to whether some record shares its identity.
func Project(questions []domain.Question, records []domain.BookmarkRecord) map[int]bool {
	flags := make(map[int]bool, len(questions))
	for i, q := range questions {
		flags[i] = domain.ContainsIdentity(records, q)
	}
	return flags
}
