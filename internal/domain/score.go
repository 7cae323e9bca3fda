package domain

import "math"

// Score is the graded result of one attempt at a test.
type Score struct {
	Correct  int `json:"correct"`
	Answered int `json:"answered"`
	Total    int `json:"total"`
	Percent  int `json:"percent"`
}

// Grade counts the answers equal to their question's Answer. answers maps a
// question index to the chosen option; indices outside questions are ignored.
// Percent is rounded against every question of the test, answered or not.
func Grade(questions []Question, answers map[int]string) Score {
	s := Score{Total: len(questions)}
	for i, chosen := range answers {
		if i < 0 || i >= len(questions) {
			continue
		}
		s.Answered++
		if questions[i].Answer == chosen {
			s.Correct++
		}
	}
	if s.Total > 0 {
		s.Percent = int(math.Round(float64(s.Correct) / float64(s.Total) * 100))
	}
	return s
}
