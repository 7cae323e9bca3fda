package bookmark

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/ekpss/quizapp/internal/domain"
)

// document is the persisted shape of a bookmark. Field names are part of the
// storage format shared with the mobile client.
type document struct {
	Question *string   `json:"question"`
	Options  *[]string `json:"options"`
	Answer   *string   `json:"answer"`
	TestID   *string   `json:"testId"`
	Subject  *string   `json:"subject"`
}

// EncodeDocument serializes rec into its stored form.
// The record ID and owner are not part of the document body.
// Strings that are not valid UTF-8 are rejected with ErrInvalidQuestion, since
// encoding would silently replace the bad bytes.
func EncodeDocument(rec domain.BookmarkRecord) ([]byte, error) {
	if err := checkUTF8(rec); err != nil {
		return nil, err
	}
	options := rec.Question.Options
	if options == nil {
		options = []string{}
	}
	data, err := json.Marshal(document{
		Question: &rec.Question.Text,
		Options:  &options,
		Answer:   &rec.Question.Answer,
		TestID:   &rec.Question.TestID,
		Subject:  &rec.Subject,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bookmark: %w", err)
	}
	return data, nil
}

func checkUTF8(rec domain.BookmarkRecord) error {
	fields := map[string]string{
		"question": rec.Question.Text,
		"answer":   rec.Question.Answer,
		"testId":   rec.Question.TestID,
		"subject":  rec.Subject,
	}
	for name, v := range fields {
		if !utf8.ValidString(v) {
			return fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidQuestion, name)
		}
	}
	for i, opt := range rec.Question.Options {
		if !utf8.ValidString(opt) {
			return fmt.Errorf("%w: options[%d] is not valid UTF-8", ErrInvalidQuestion, i)
		}
	}
	return nil
}

// DecodeDocument parses a stored document. Every persisted field must be present
// with the right type, otherwise ErrMalformedDocument is returned.
func DecodeDocument(id, userID string, data []byte) (domain.BookmarkRecord, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.BookmarkRecord{}, fmt.Errorf("%w %s: %v", ErrMalformedDocument, id, err)
	}

	missing := ""
	switch {
	case doc.Question == nil:
		missing = "question"
	case doc.Options == nil:
		missing = "options"
	case doc.Answer == nil:
		missing = "answer"
	case doc.TestID == nil:
		missing = "testId"
	case doc.Subject == nil:
		missing = "subject"
	}
	if missing != "" {
		return domain.BookmarkRecord{}, fmt.Errorf("%w %s: missing field %q", ErrMalformedDocument, id, missing)
	}

	return domain.BookmarkRecord{
		ID:      id,
		UserID:  userID,
		Subject: *doc.Subject,
		Question: domain.Question{
			Text:    *doc.Question,
			Options: *doc.Options,
			Answer:  *doc.Answer,
			TestID:  *doc.TestID,
		},
	}, nil
}
