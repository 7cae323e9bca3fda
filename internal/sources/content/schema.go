package content

// File represents the top-level structure of the content file
type File struct {
	Subjects []SubjectProps `yaml:"subjects"`
}

// SubjectProps contains one subject with its notes and tests
type SubjectProps struct {
	Name  string      `yaml:"name"`
	Slug  string      `yaml:"slug,omitempty"`
	Notes []NoteProps `yaml:"notes,omitempty"`
	Tests []TestProps `yaml:"tests,omitempty"`
}

// NoteProps is a study note
type NoteProps struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// TestProps is a test and its questions
type TestProps struct {
	ID        string          `yaml:"id"`
	Title     string          `yaml:"title,omitempty"`
	Questions []QuestionProps `yaml:"questions,omitempty"`
}

// QuestionProps is a multiple-choice question
type QuestionProps struct {
	Question string   `yaml:"question"`
	Options  []string `yaml:"options"`
	Answer   string   `yaml:"answer"`
}
