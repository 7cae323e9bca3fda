package domain

import "testing"

func TestGrade(t *testing.T) {
	questions := []Question{
		{Text: "2+2=?", Options: []string{"3", "4"}, Answer: "4"},
		{Text: "3+3=?", Options: []string{"6", "7"}, Answer: "6"},
		{Text: "5+5=?", Options: []string{"10", "11"}, Answer: "10"},
	}

	tests := []struct {
		name    string
		answers map[int]string
		want    Score
	}{
		{"all correct", map[int]string{0: "4", 1: "6", 2: "10"}, Score{Correct: 3, Answered: 3, Total: 3, Percent: 100}},
		{"one wrong", map[int]string{0: "4", 1: "7", 2: "10"}, Score{Correct: 2, Answered: 3, Total: 3, Percent: 67}},
		{"unanswered count against the percent", map[int]string{0: "4"}, Score{Correct: 1, Answered: 1, Total: 3, Percent: 33}},
		{"out of range ignored", map[int]string{-1: "4", 7: "6"}, Score{Total: 3}},
		{"nothing answered", nil, Score{Total: 3}},
	}

	for _, tt := range tests {
		if got := Grade(questions, tt.answers); got != tt.want {
			t.Errorf("%s: Grade() = %+v, want %+v", tt.name, got, tt.want)
		}
	}

	if got := Grade(nil, map[int]string{0: "x"}); got != (Score{}) {
		t.Errorf("empty test: Grade() = %+v, want zero", got)
	}
}
