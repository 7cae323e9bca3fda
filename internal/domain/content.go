package domain

import "strings"

// Subject is a top-level topic of the catalog.
type Subject struct {
	// Name is the display name, used as the bookmark subject.
	// Example: Türkçe
	Name string `json:"name"`

	// Slug is the storage-friendly name.
	// Example: turkce
	Slug string `json:"slug"`
}

// Test is a question set that belongs to a subject.
type Test struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Note is a study note that belongs to a subject.
type Note struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SubjectSlug returns slug when set, otherwise the lowercased name.
func SubjectSlug(name, slug string) string {
	if s := strings.TrimSpace(slug); s != "" {
		return s
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// TestContent is a test together with its questions.
type TestContent struct {
	Test      Test       `json:"test"`
	Questions []Question `json:"questions"`
}

// SubjectContent is everything the catalog knows about one subject.
type SubjectContent struct {
	Subject Subject       `json:"subject"`
	Notes   []Note        `json:"notes"`
	Tests   []TestContent `json:"tests"`
}
