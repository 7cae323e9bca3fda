package handlers

import (
	"net/http"
	"time"

	"github.com/ekpss/quizapp/internal/httpserver/deps"
	"github.com/ekpss/quizapp/internal/version"
)

type healthzResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Store         string  `json:"store"`
	Subjects      int     `json:"subjects"`
	version.Info
}

// Healthz answers as long as the process serves HTTP. It never touches the
// store; /readyz does.
func Healthz(d deps.Deps) http.HandlerFunc {
	now := d.TimeNow
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		subjects := 0
		if d.Catalog != nil {
			subjects = d.Catalog.Count()
		}
		writeJSON(w, http.StatusOK, healthzResponse{
			Status:        "ok",
			UptimeSeconds: now().Sub(d.StartTime).Seconds(),
			Store:         d.StoreKind,
			Subjects:      subjects,
			Info:          d.Build,
		})
	}
}
