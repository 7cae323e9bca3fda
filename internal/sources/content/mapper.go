package content

import (
	"fmt"
	"strings"

	"github.com/ekpss/quizapp/internal/domain"
)

// Mapper converts the content file to domain.SubjectContent entities
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapSubjects converts a parsed content File to []*domain.SubjectContent
func (m *Mapper) MapSubjects(file File) ([]*domain.SubjectContent, error) {
	var subjects []*domain.SubjectContent

	for _, props := range file.Subjects {
		name := strings.TrimSpace(props.Name)

		// Skip subjects without name
		if name == "" {
			continue
		}

		subject := &domain.SubjectContent{
			Subject: domain.Subject{
				Name: name,
				Slug: domain.SubjectSlug(name, props.Slug),
			},
			Notes: make([]domain.Note, 0, len(props.Notes)),
			Tests: make([]domain.TestContent, 0, len(props.Tests)),
		}

		for _, note := range props.Notes {
			subject.Notes = append(subject.Notes, domain.Note{Title: note.Title, Content: note.Content})
		}

		for _, test := range props.Tests {
			id := strings.TrimSpace(test.ID)
			if id == "" {
				continue
			}
			subject.Tests = append(subject.Tests, mapTest(id, test))
		}

		subjects = append(subjects, subject)
	}

	if len(subjects) == 0 {
		return nil, fmt.Errorf("no valid subjects found in content file")
	}

	return subjects, nil
}

// mapTest defaults the title to the id and stamps every question with it
func mapTest(id string, props TestProps) domain.TestContent {
	title := strings.TrimSpace(props.Title)
	if title == "" {
		title = id
	}

	questions := make([]domain.Question, 0, len(props.Questions))
	for _, q := range props.Questions {
		// Skip questions without text
		if strings.TrimSpace(q.Question) == "" {
			continue
		}

		options := q.Options
		if options == nil {
			options = []string{}
		}
		questions = append(questions, domain.Question{
			Text:    q.Question,
			Options: options,
			Answer:  q.Answer,
			TestID:  id,
		})
	}

	return domain.TestContent{
		Test:      domain.Test{ID: id, Title: title},
		Questions: questions,
	}
}
