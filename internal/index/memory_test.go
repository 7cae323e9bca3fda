package index

import (
	"errors"
	"sync"
	"testing"

	"github.com/ekpss/quizapp/internal/domain"
)

func sampleContent() []*domain.SubjectContent {
	return []*domain.SubjectContent{
		{
			Subject: domain.Subject{Name: "Matematik", Slug: "matematik"},
			Notes:   []domain.Note{{Title: "Kesirler", Content: "..."}},
			Tests: []domain.TestContent{
				{
					Test: domain.Test{ID: "t1", Title: "Deneme 1"},
					Questions: []domain.Question{
						{Text: "2+2=?", Options: []string{"3", "4", "5"}, Answer: "4"},
						{Text: "3+3=?", Options: []string{"6", "7"}, Answer: "6", TestID: "stale"},
					},
				},
			},
		},
		{Subject: domain.Subject{Name: "Türkçe", Slug: "turkce"}},
	}
}

func TestNewCatalog(t *testing.T) {
	catalog := NewCatalog()
	if catalog == nil {
		t.Fatal("NewCatalog() returned nil")
	}
	if n := catalog.Count(); n != 0 {
		t.Errorf("NewCatalog() should start empty, got %v subjects", n)
	}
	if !catalog.GetLastReload().IsZero() {
		t.Error("GetLastReload() should be zero before the first update")
	}
}

func TestUpdateKeepsOrder(t *testing.T) {
	catalog := NewCatalog()
	catalog.Update(sampleContent())

	subjects := catalog.Subjects()
	if len(subjects) != 2 {
		t.Fatalf("Subjects() returned %v subjects, want 2", len(subjects))
	}
	if subjects[0].Slug != "matematik" || subjects[1].Slug != "turkce" {
		t.Errorf("Subjects() order = %v, want matematik, turkce", subjects)
	}
	if catalog.GetLastReload().IsZero() {
		t.Error("GetLastReload() should be set after update")
	}
}

func TestUpdateOverwrites(t *testing.T) {
	catalog := NewCatalog()
	catalog.Update(sampleContent())
	catalog.Update([]*domain.SubjectContent{{Subject: domain.Subject{Name: "Tarih", Slug: "tarih"}}})

	if n := catalog.Count(); n != 1 {
		t.Errorf("Update() should overwrite, got %v subjects want 1", n)
	}
	if _, err := catalog.Tests("matematik"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Tests() on removed subject err = %v, want ErrNotFound", err)
	}
}

func TestUpdateSkipsDuplicateSlugs(t *testing.T) {
	catalog := NewCatalog()
	catalog.Update([]*domain.SubjectContent{
		{Subject: domain.Subject{Name: "Tarih", Slug: "tarih"}},
		{Subject: domain.Subject{Name: "Tarih 2", Slug: "tarih"}},
	})

	if n := catalog.Count(); n != 1 {
		t.Errorf("Count() = %v, want 1", n)
	}
	s, err := catalog.Subject("tarih")
	if err != nil || s.Name != "Tarih" {
		t.Errorf("Subject() = %v, %v; want first subject", s, err)
	}
}

func TestSubjectLookupByNameOrSlug(t *testing.T) {
	catalog := NewCatalog()
	catalog.Update(sampleContent())

	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{"turkce", "Türkçe", false},
		{"Türkçe", "Türkçe", false},
		{"matematik", "Matematik", false},
		{"MATEMATIK", "Matematik", false},
		{"fizik", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s, err := catalog.Subject(tt.key)
			if tt.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("Subject(%q) err = %v, want ErrNotFound", tt.key, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Subject(%q) unexpected error: %v", tt.key, err)
			}
			if s.Name != tt.want {
				t.Errorf("Subject(%q) = %v, want %v", tt.key, s.Name, tt.want)
			}
		})
	}
}

func TestQuestionsCarryTestID(t *testing.T) {
	catalog := NewCatalog()
	catalog.Update(sampleContent())

	questions, err := catalog.Questions("matematik", "t1")
	if err != nil {
		t.Fatalf("Questions() unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("Questions() returned %v questions, want 2", len(questions))
	}
	for _, q := range questions {
		if q.TestID != "t1" {
			t.Errorf("question %q has testId %q, want t1", q.Text, q.TestID)
		}
	}

	// Returned slices are copies
	questions[0].Options[0] = "mutated"
	again, _ := catalog.Questions("matematik", "t1")
	if again[0].Options[0] != "3" {
		t.Error("Questions() should return copies")
	}

	if _, err := catalog.Questions("matematik", "t9"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Questions() unknown test err = %v, want ErrNotFound", err)
	}
}

func TestTestsAndNotes(t *testing.T) {
	catalog := NewCatalog()
	catalog.Update(sampleContent())

	tests, err := catalog.Tests("Matematik")
	if err != nil || len(tests) != 1 || tests[0].Title != "Deneme 1" {
		t.Errorf("Tests() = %v, %v", tests, err)
	}

	notes, err := catalog.Notes("matematik")
	if err != nil || len(notes) != 1 {
		t.Errorf("Notes() = %v, %v", notes, err)
	}

	notes, err = catalog.Notes("turkce")
	if err != nil || notes == nil || len(notes) != 0 {
		t.Errorf("Notes() for subject without notes = %v, %v; want empty", notes, err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	catalog := NewCatalog()
	catalog.Update(sampleContent())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			catalog.Update(sampleContent())
		}()
		go func() {
			defer wg.Done()
			_, _ = catalog.Questions("matematik", "t1")
			_ = catalog.Subjects()
		}()
	}
	wg.Wait()

	if n := catalog.Count(); n != 2 {
		t.Errorf("Count() after concurrent updates = %v, want 2", n)
	}
}
