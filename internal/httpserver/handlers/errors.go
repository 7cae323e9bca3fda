package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ekpss/quizapp/internal/bookmark"
	"github.com/ekpss/quizapp/internal/index"
	"github.com/ekpss/quizapp/internal/logger"
)

// ErrInvalidRequest marks a malformed body or missing parameter
var ErrInvalidRequest = errors.New("invalid request")

const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeNotFound         = "NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to its status code and error body
func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, bookmark.ErrInvalidQuestion):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Code: CodeInvalidRequest, Message: err.Error()})
	case errors.Is(err, index.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Code: CodeNotFound, Message: err.Error()})
	case errors.Is(err, bookmark.ErrStoreUnavailable):
		log.Warn("bookmark store unavailable", logger.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Code: CodeStoreUnavailable, Message: "bookmark store unavailable", Details: err.Error()})
	default:
		log.Error("unexpected handler error", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Code: CodeInternalError, Message: "An unexpected error occurred"})
	}
}
