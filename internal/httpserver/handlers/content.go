package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ekpss/quizapp/internal/domain"
	"github.com/ekpss/quizapp/internal/httpserver/deps"
	"github.com/ekpss/quizapp/internal/httpserver/mw"
)

type questionResponse struct {
	domain.Question
	Bookmarked bool `json:"bookmarked"`
}

type questionsResponse struct {
	Subject   domain.Subject     `json:"subject"`
	TestID    string             `json:"testId"`
	Questions []questionResponse `json:"questions"`
}

// ListSubjects returns every subject of the catalog
func ListSubjects(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Catalog.Subjects())
	}
}

// ListTests returns the tests of {subject}
func ListTests(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tests, err := d.Catalog.Tests(chi.URLParam(r, "subject"))
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, tests)
	}
}

// ListNotes returns the study notes of {subject}
func ListNotes(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes, err := d.Catalog.Notes(chi.URLParam(r, "subject"))
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, notes)
	}
}

// ListQuestions returns the questions of {testId} with the caller's bookmark flag on each
func ListQuestions(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := chi.URLParam(r, "subject")
		testID := chi.URLParam(r, "testId")

		subject, err := d.Catalog.Subject(key)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		questions, err := d.Catalog.Questions(key, testID)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		flags, err := d.Bookmarks.Annotate(ctx, mw.UserFrom(ctx), questions)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		out := questionsResponse{
			Subject:   subject,
			TestID:    testID,
			Questions: make([]questionResponse, len(questions)),
		}
		for i, q := range questions {
			out.Questions[i] = questionResponse{Question: q, Bookmarked: flags[i]}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type scoreRequest struct {
	// Answers maps question index (as a JSON object key) to the chosen option.
	Answers map[int]string `json:"answers"`
}

// ScoreTest grades the posted answers against {testId}
func ScoreTest(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoreRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		questions, err := d.Catalog.Questions(chi.URLParam(r, "subject"), chi.URLParam(r, "testId"))
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, domain.Grade(questions, req.Answers))
	}
}
