package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ekpss/quizapp/internal/httpserver/deps"
	"github.com/ekpss/quizapp/internal/httpserver/handlers"
)

func init() { Register("content", registerContent) }

func registerContent(r chi.Router, d deps.Deps) {
	r.Get("/subjects", handlers.ListSubjects(d))
	r.Get("/subjects/{subject}/tests", handlers.ListTests(d))
	r.Get("/subjects/{subject}/notes", handlers.ListNotes(d))
	r.Get("/subjects/{subject}/tests/{testId}/questions", handlers.ListQuestions(d))
	r.Post("/subjects/{subject}/tests/{testId}/score", handlers.ScoreTest(d))
}
