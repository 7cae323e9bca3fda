package domain

import "unicode/utf8"

// Question is an immutable quiz question as served by the content catalog
// and as copied into bookmark documents.
//
// A Question carries no surrogate identifier. Two questions denote the same
// bookmark when their Identity matches.
type Question struct {
	// Text is the question prompt.
	// Example: "2+2=?"
	Text string `json:"question" yaml:"question"`

	// Options are the answer choices in display order. Duplicates are allowed.
	Options []string `json:"options" yaml:"options"`

	// Answer should equal one of Options in well-formed data.
	// This is not enforced.
	Answer string `json:"answer" yaml:"answer"`

	// TestID is the test the question belongs to.
	TestID string `json:"testId" yaml:"testId,omitempty"`
}

// Identity is the bookmark identity key of a question: (text, testId).
// Comparison is exact and case-sensitive.
type Identity struct {
	Text   string `json:"question"`
	TestID string `json:"testId"`
}

// Identifiable is anything that has a bookmark identity.
type Identifiable interface {
	Identity() Identity
}

// Identity returns the (text, testId) key of q.
func (q Question) Identity() Identity {
	return Identity{Text: q.Text, TestID: q.TestID}
}

// Valid reports whether both parts of the key are valid UTF-8. Only valid keys
// survive a JSON round trip unchanged.
func (id Identity) Valid() bool {
	return utf8.ValidString(id.Text) && utf8.ValidString(id.TestID)
}

// Identity returns itself so a bare key can be compared like a question.
func (id Identity) Identity() Identity {
	return id
}

// SameIdentity reports whether a and b refer to the same bookmark.
// Options and answer are never part of the comparison.
func SameIdentity(a, b Identifiable) bool {
	return a.Identity() == b.Identity()
}

// WithTestID returns a copy of q that belongs to testID.
func (q Question) WithTestID(testID string) Question {
	q.TestID = testID
	if q.Options != nil {
		q.Options = append([]string(nil), q.Options...)
	}
	return q
}
