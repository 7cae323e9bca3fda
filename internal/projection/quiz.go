package projection

import (
	"context"
	"fmt"
	"sync"

	"github.com/ekpss/quizapp/internal/domain"
)

// QuizView holds the bookmark flags of the questions shown on one quiz screen.
//
// Flags are recomputed from scratch whenever the question list or the bookmark
// listing changes. A successful toggle only patches the toggled index.
type QuizView struct {
	mu        sync.Mutex
	svc       Bookmarks
	userID    string
	subject   string
	questions []domain.Question
	records   []domain.BookmarkRecord
	flags     map[int]bool
	closed    bool
}

// NewQuizView creates a view for userID's quiz on subject.
func NewQuizView(svc Bookmarks, userID, subject string) *QuizView {
	return &QuizView{
		svc:     svc,
		userID:  userID,
		subject: subject,
		flags:   map[int]bool{},
	}
}

// SetQuestions replaces the displayed questions and recomputes every flag
// against the last fetched listing.
func (v *QuizView) SetQuestions(questions []domain.Question) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.questions = append([]domain.Question(nil), questions...)
	v.flags = Project(v.questions, v.records)
}

// Refresh fetches the user's bookmarks and recomputes every flag.
// On failure the current flags are kept.
func (v *QuizView) Refresh(ctx context.Context) error {
	records, err := v.svc.ListForUser(ctx, v.userID)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	v.records = records
	v.flags = Project(v.questions, v.records)
	return nil
}

// Toggle flips the bookmark of question i using its projected flag as the
// current state. On success only flags[i] changes; on failure nothing does.
func (v *QuizView) Toggle(ctx context.Context, i int) (bool, error) {
	v.mu.Lock()
	if i < 0 || i >= len(v.questions) {
		v.mu.Unlock()
		return false, fmt.Errorf("question index %d out of range [0,%d)", i, len(v.questions))
	}
	q := v.questions[i]
	current := v.flags[i]
	v.mu.Unlock()

	next, err := v.svc.Toggle(ctx, v.userID, v.subject, q, current)
	if err != nil {
		return current, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// The screen is gone or shows other questions; drop the result.
	if v.closed || i >= len(v.questions) || !domain.SameIdentity(v.questions[i], q) {
		return next, nil
	}

	v.flags[i] = next
	if next {
		v.records = append(v.records, domain.BookmarkRecord{UserID: v.userID, Subject: v.subject, Question: q})
	} else {
		v.records = dropIdentity(v.records, q)
	}
	return next, nil
}

// Flags returns a copy of the current index to flag mapping.
func (v *QuizView) Flags() map[int]bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make(map[int]bool, len(v.flags))
	for i, b := range v.flags {
		out[i] = b
	}
	return out
}

// IsBookmarked returns the projected flag of question i.
func (v *QuizView) IsBookmarked(i int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.flags[i]
}

// Close detaches the view. Results of calls still in flight are discarded.
func (v *QuizView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}

func dropIdentity(records []domain.BookmarkRecord, item domain.Identifiable) []domain.BookmarkRecord {
	kept := records[:0:0]
	for _, rec := range records {
		if !domain.SameIdentity(rec, item) {
			kept = append(kept, rec)
		}
	}
	return kept
}
