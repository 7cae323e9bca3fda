package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ekpss/quizapp/internal/httpserver/deps"
	"github.com/ekpss/quizapp/internal/httpserver/handlers"
	"github.com/ekpss/quizapp/internal/httpserver/mw"
)

func init() { Register("ops", registerOps) }

func registerOps(r chi.Router, d deps.Deps) {
	ops := r.With(mw.AllowCIDRs(d.AllowedCIDRS, d.TrustProxy, d.Logger), mw.AllowHosts(d.AllowedHosts, d.Logger))
	ops.Post("/reload", handlers.Reload(d))
	ops.Get("/infra", handlers.Infra(d))
}
