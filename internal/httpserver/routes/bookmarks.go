package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ekpss/quizapp/internal/httpserver/deps"
	"github.com/ekpss/quizapp/internal/httpserver/handlers"
	"github.com/ekpss/quizapp/internal/httpserver/mw"
)

func init() { Register("bookmarks", registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	// Writes are limited per user, anonymous callers per client address
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:      d.RateBurst,
		PerMinute:  d.RatePerMin,
		MaxKeys:    10000,
		TrustProxy: d.TrustProxy,
	}, d.Logger)

	r.Get("/bookmarks", handlers.ListBookmarks(d))
	r.Get("/bookmarks/check", handlers.CheckBookmark(d))

	mutate := r.With(limit)
	mutate.Post("/bookmarks", handlers.SaveBookmark(d))
	mutate.Delete("/bookmarks", handlers.RemoveBookmark(d))
	mutate.Post("/bookmarks/toggle", handlers.ToggleBookmark(d))
}
