package projection

import (
	"context"
	"fmt"
	"sync"

	"github.com/ekpss/quizapp/internal/domain"
)

// SavedView holds the list shown on the saved-questions screen.
type SavedView struct {
	mu      sync.Mutex
	svc     Bookmarks
	userID  string
	subject string
	records []domain.BookmarkRecord
	closed  bool
}

// NewSavedView creates a view of userID's bookmarks. An empty subject lists all of them.
func NewSavedView(svc Bookmarks, userID, subject string) *SavedView {
	return &SavedView{svc: svc, userID: userID, subject: subject}
}

// Load fetches the list. On failure the previous list is kept.
func (v *SavedView) Load(ctx context.Context) error {
	var (
		records []domain.BookmarkRecord
		err     error
	)
	if v.subject == "" {
		records, err = v.svc.ListForUser(ctx, v.userID)
	} else {
		records, err = v.svc.ListForSubject(ctx, v.userID, v.subject)
	}
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.closed {
		v.records = records
	}
	return nil
}

// Records returns a copy of the current list.
func (v *SavedView) Records() []domain.BookmarkRecord {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.BookmarkRecord(nil), v.records...)
}

// Remove deletes bookmark i from the store and, on success, drops every
// local entry with the same identity.
func (v *SavedView) Remove(ctx context.Context, i int) (int, error) {
	v.mu.Lock()
	if i < 0 || i >= len(v.records) {
		v.mu.Unlock()
		return 0, fmt.Errorf("bookmark index %d out of range [0,%d)", i, len(v.records))
	}
	q := v.records[i].Question
	v.mu.Unlock()

	deleted, err := v.svc.Remove(ctx, v.userID, q)
	if err != nil {
		return 0, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.closed {
		v.records = dropIdentity(v.records, q)
	}
	return deleted, nil
}

// Close detaches the view.
func (v *SavedView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
