package mw

import (
	"context"
	"net/http"

	"github.com/ekpss/quizapp/internal/domain"
)

// UserIDHeader carries the signed-in user id set by the auth proxy
const UserIDHeader = "X-User-ID"

type userKey struct{}

// UserID resolves the caller from UserIDHeader and stores it in the request context.
// A missing or blank header resolves to domain.DefaultUserID.
func UserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := domain.ResolveUserID(r.Header.Get(UserIDHeader))
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, uid)))
	})
}

// UserFrom returns the user id stored by UserID, or domain.DefaultUserID
func UserFrom(ctx context.Context) string {
	if uid, ok := ctx.Value(userKey{}).(string); ok {
		return uid
	}
	return domain.DefaultUserID
}
