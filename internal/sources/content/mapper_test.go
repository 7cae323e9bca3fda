package content

import (
	"testing"
)

func TestMapperMapSubjects(t *testing.T) {
	file := File{
		Subjects: []SubjectProps{
			{
				Name:  "Matematik",
				Slug:  "matematik",
				Notes: []NoteProps{{Title: "Kesirler", Content: "..."}},
				Tests: []TestProps{
					{
						ID:    "t1",
						Title: "Deneme 1",
						Questions: []QuestionProps{
							{Question: "2+2=?", Options: []string{"3", "4", "5"}, Answer: "4"},
						},
					},
				},
			},
			{Name: "Türkçe"},
		},
	}

	subjects, err := NewMapper().MapSubjects(file)
	if err != nil {
		t.Fatalf("MapSubjects() error = %v", err)
	}

	if len(subjects) != 2 {
		t.Fatalf("MapSubjects() returned %v subjects, want 2", len(subjects))
	}

	mat := subjects[0]
	if mat.Subject.Slug != "matematik" || len(mat.Notes) != 1 || len(mat.Tests) != 1 {
		t.Errorf("MapSubjects() subject = %+v", mat)
	}
	q := mat.Tests[0].Questions[0]
	if q.TestID != "t1" {
		t.Errorf("question testId = %q, want t1", q.TestID)
	}

	if subjects[1].Subject.Slug != "türkçe" {
		t.Errorf("default slug = %q, want lowercased name", subjects[1].Subject.Slug)
	}
}

func TestMapperDefaultsAndSkips(t *testing.T) {
	file := File{
		Subjects: []SubjectProps{
			{Name: "  "},
			{
				Name: "Tarih",
				Tests: []TestProps{
					{ID: "", Title: "no id"},
					{ID: "t2", Questions: []QuestionProps{
						{Question: ""},
						{Question: "1071?", Answer: "Malazgirt"},
					}},
				},
			},
		},
	}

	subjects, err := NewMapper().MapSubjects(file)
	if err != nil {
		t.Fatalf("MapSubjects() error = %v", err)
	}

	if len(subjects) != 1 {
		t.Fatalf("nameless subjects should be skipped, got %v", len(subjects))
	}
	tests := subjects[0].Tests
	if len(tests) != 1 {
		t.Fatalf("tests without id should be skipped, got %v", len(tests))
	}
	if tests[0].Test.Title != "t2" {
		t.Errorf("title should default to id, got %q", tests[0].Test.Title)
	}
	if len(tests[0].Questions) != 1 {
		t.Fatalf("questions without text should be skipped, got %v", len(tests[0].Questions))
	}
	if tests[0].Questions[0].Options == nil {
		t.Error("missing options should map to an empty list")
	}
}

func TestMapperEmptyFile(t *testing.T) {
	_, err := NewMapper().MapSubjects(File{})
	if err == nil {
		t.Error("MapSubjects() with no subjects should return error")
	}
}
