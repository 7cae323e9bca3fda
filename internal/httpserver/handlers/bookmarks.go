package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ekpss/quizapp/internal/domain"
	"github.com/ekpss/quizapp/internal/httpserver/deps"
	"github.com/ekpss/quizapp/internal/httpserver/mw"
)

const maxBodyBytes = 64 << 10

type bookmarkResponse struct {
	ID       string          `json:"id"`
	Subject  string          `json:"subject"`
	Question domain.Question `json:"question"`
}

type saveRequest struct {
	Subject  string          `json:"subject"`
	Question domain.Question `json:"question"`
}

type removeRequest struct {
	Question domain.Question `json:"question"`
}

type toggleRequest struct {
	Subject             string          `json:"subject"`
	Question            domain.Question `json:"question"`
	CurrentlyBookmarked bool            `json:"currentlyBookmarked"`
}

type bookmarkedResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

type deletedResponse struct {
	Deleted int `json:"deleted"`
}

// ListBookmarks returns the caller's bookmarks, optionally narrowed to ?subject=
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		uid := mw.UserFrom(ctx)

		var (
			records []domain.BookmarkRecord
			err     error
		)
		if subject := strings.TrimSpace(r.URL.Query().Get("subject")); subject != "" {
			records, err = d.Bookmarks.ListForSubject(ctx, uid, subject)
		} else {
			records, err = d.Bookmarks.ListForUser(ctx, uid)
		}
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		out := make([]bookmarkResponse, 0, len(records))
		for _, rec := range records {
			out = append(out, bookmarkResponse{ID: rec.ID, Subject: rec.Subject, Question: rec.Question})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// CheckBookmark reports whether ?question= in ?testId= is bookmarked by the caller
func CheckBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := domain.Question{
			Text:   r.URL.Query().Get("question"),
			TestID: r.URL.Query().Get("testId"),
		}
		if strings.TrimSpace(q.Text) == "" {
			writeError(w, d.Logger, fmt.Errorf("%w: question is required", ErrInvalidRequest))
			return
		}

		writeJSON(w, http.StatusOK, bookmarkedResponse{
			Bookmarked: d.Bookmarks.IsBookmarked(r.Context(), mw.UserFrom(r.Context()), q),
		})
	}
}

// SaveBookmark bookmarks a question; saving twice is a no-op
func SaveBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		if err := validate(req.Subject, req.Question, true); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		if err := d.Bookmarks.Save(r.Context(), mw.UserFrom(r.Context()), req.Subject, req.Question); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// RemoveBookmark deletes every bookmark of the caller matching the question
func RemoveBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req removeRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		if err := validate("", req.Question, false); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		deleted, err := d.Bookmarks.Remove(r.Context(), mw.UserFrom(r.Context()), req.Question)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, deletedResponse{Deleted: deleted})
	}
}

// ToggleBookmark flips the bookmark state starting from the client's known state
func ToggleBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req toggleRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		if err := validate(req.Subject, req.Question, true); err != nil {
			writeError(w, d.Logger, err)
			return
		}

		state, err := d.Bookmarks.Toggle(r.Context(), mw.UserFrom(r.Context()), req.Subject, req.Question, req.CurrentlyBookmarked)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, bookmarkedResponse{Bookmarked: state})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

func validate(subject string, q domain.Question, needSubject bool) error {
	if needSubject && strings.TrimSpace(subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: question.question is required", ErrInvalidRequest)
	}
	return nil
}
