package redis

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/ekpss/quizapp/internal/domain"
)

const (
	// KeyPrefixUser is the prefix of every per-user key
	KeyPrefixUser = "quizapp:user:"
	// KeyPrefixSubject is the prefix for persisted subject content
	KeyPrefixSubject = "quizapp:content:subject:"
	// KeyAllSubjects is the key for the set of all subject slugs
	KeyAllSubjects = "quizapp:content:subjects"
)

// BookmarkKey returns the Redis key of one bookmark document
func BookmarkKey(userID, docID string) string {
	return KeyPrefixUser + userID + ":bookmark:" + docID
}

// UserBookmarksKey returns the sorted set of all bookmark ids of a user, scored by creation time
func UserBookmarksKey(userID string) string {
	return KeyPrefixUser + userID + ":bookmarks"
}

// IdentityIndexKey returns the set of bookmark ids sharing an identity key
func IdentityIndexKey(userID string, id domain.Identity) string {
	return UserBookmarksKey(userID) + ":identity:" + identityHash(id)
}

// SubjectIndexKey returns the sorted set of bookmark ids saved under a subject
func SubjectIndexKey(userID, subject string) string {
	return UserBookmarksKey(userID) + ":subject:" + subject
}

// SubjectKey returns the Redis key for persisted subject content
func SubjectKey(slug string) string {
	return KeyPrefixSubject + slug
}

// AllSubjectsKey returns the key for the set of all subject slugs
func AllSubjectsKey() string {
	return KeyAllSubjects
}

// identityHash keeps index keys short whatever the question text is.
// A NUL separator keeps ("ab","c") and ("a","bc") apart.
func identityHash(id domain.Identity) string {
	hash := sha256.Sum256([]byte(id.Text + "\x00" + id.TestID))
	return hex.EncodeToString(hash[:])[:16]
}
