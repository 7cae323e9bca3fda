package domain

// BookmarkRecord is a stored copy of a Question saved by a user.
// Records are write-once: created by save, deleted by remove, never updated.
type BookmarkRecord struct {
	// ─────────────────────────────
	// Storage (assigned by the store)
	// ─────────────────────────────

	// ID is the document id inside the user's bookmark collection.
	// It is NOT part of the bookmark identity.
	ID string

	// UserID owns the collection the record lives in.
	UserID string

	// ─────────────────────────────
	// Payload
	// ─────────────────────────────

	// Subject is the subject the question was bookmarked from.
	// Example: Matematik
	Subject string

	// Question is the bookmarked question copy.
	Question Question
}

// Identity returns the identity key of the bookmarked question.
func (r BookmarkRecord) Identity() Identity {
	return r.Question.Identity()
}

// ContainsIdentity reports whether any record in records matches item.
func ContainsIdentity(records []BookmarkRecord, item Identifiable) bool {
	for _, rec := range records {
		if SameIdentity(rec, item) {
			return true
		}
	}
	return false
}
