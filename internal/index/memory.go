package index

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ekpss/quizapp/internal/domain"
)

// ErrNotFound is returned for an unknown subject or test
var ErrNotFound = errors.New("not found")

// Catalog provides in-memory storage and lookup for subjects, notes, tests and questions
type Catalog struct {
	mu         sync.RWMutex
	subjects   map[string]*domain.SubjectContent // slug -> content
	names      map[string]string                 // lowercased name -> slug
	order      []string                          // slugs in load order
	lastReload time.Time                         // Timestamp of last content reload
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		subjects: make(map[string]*domain.SubjectContent),
		names:    make(map[string]string),
	}
}

// Update replaces all content in the catalog.
// Every question is stamped with the id of the test it belongs to.
func (c *Catalog) Update(subjects []*domain.SubjectContent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Clear and rebuild
	c.subjects = make(map[string]*domain.SubjectContent, len(subjects))
	c.names = make(map[string]string, len(subjects))
	c.order = make([]string, 0, len(subjects))

	for _, subject := range subjects {
		slug := subject.Subject.Slug
		if _, dup := c.subjects[slug]; dup {
			continue
		}

		stamped := &domain.SubjectContent{
			Subject: subject.Subject,
			Notes:   append([]domain.Note(nil), subject.Notes...),
			Tests:   make([]domain.TestContent, len(subject.Tests)),
		}
		for i, test := range subject.Tests {
			questions := make([]domain.Question, len(test.Questions))
			for j, q := range test.Questions {
				questions[j] = q.WithTestID(test.Test.ID)
			}
			stamped.Tests[i] = domain.TestContent{Test: test.Test, Questions: questions}
		}

		c.subjects[slug] = stamped
		c.names[strings.ToLower(subject.Subject.Name)] = slug
		c.order = append(c.order, slug)
	}
	c.lastReload = time.Now()
}

// All returns the content of every subject in load order
func (c *Catalog) All() []*domain.SubjectContent {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make([]*domain.SubjectContent, 0, len(c.order))
	for _, slug := range c.order {
		all = append(all, c.subjects[slug])
	}
	return all
}

// Subjects returns every subject in load order
func (c *Catalog) Subjects() []domain.Subject {
	c.mu.RLock()
	defer c.mu.RUnlock()

	subjects := make([]domain.Subject, 0, len(c.order))
	for _, slug := range c.order {
		subjects = append(subjects, c.subjects[slug].Subject)
	}
	return subjects
}

// Subject resolves key, a slug or a display name, to its subject
func (c *Catalog) Subject(key string) (domain.Subject, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	content, err := c.lookup(key)
	if err != nil {
		return domain.Subject{}, err
	}
	return content.Subject, nil
}

// Tests returns the tests of a subject
func (c *Catalog) Tests(subject string) ([]domain.Test, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	content, err := c.lookup(subject)
	if err != nil {
		return nil, err
	}

	tests := make([]domain.Test, 0, len(content.Tests))
	for _, t := range content.Tests {
		tests = append(tests, t.Test)
	}
	return tests, nil
}

// Notes returns the study notes of a subject
func (c *Catalog) Notes(subject string) ([]domain.Note, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	content, err := c.lookup(subject)
	if err != nil {
		return nil, err
	}
	return append([]domain.Note{}, content.Notes...), nil
}

// Questions returns a copy of the questions of one test
func (c *Catalog) Questions(subject, testID string) ([]domain.Question, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	content, err := c.lookup(subject)
	if err != nil {
		return nil, err
	}

	for _, t := range content.Tests {
		if t.Test.ID == testID {
			questions := make([]domain.Question, len(t.Questions))
			for i, q := range t.Questions {
				questions[i] = q.WithTestID(testID)
			}
			return questions, nil
		}
	}
	return nil, fmt.Errorf("test %s in %s: %w", testID, content.Subject.Slug, ErrNotFound)
}

// Count returns the number of subjects in the catalog
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.subjects)
}

// GetLastReload returns the timestamp of the last content reload
func (c *Catalog) GetLastReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastReload
}

// lookup must be called with the lock held
func (c *Catalog) lookup(key string) (*domain.SubjectContent, error) {
	if content, ok := c.subjects[key]; ok {
		return content, nil
	}
	if slug, ok := c.names[strings.ToLower(key)]; ok {
		return c.subjects[slug], nil
	}
	return nil, fmt.Errorf("subject %s: %w", key, ErrNotFound)
}
