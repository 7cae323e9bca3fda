package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ekpss/quizapp/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready          bool `json:"ready"`
	ContentLoaded  bool `json:"content_loaded"`
	StoreReachable bool `json:"store_reachable"`
}

// Readyz reports ready once content is loaded and the bookmark store answers
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := readyzResponse{
			ContentLoaded:  d.Catalog.Count() > 0,
			StoreReachable: pingStore(r.Context(), d) == nil,
		}
		resp.Ready = resp.ContentLoaded && resp.StoreReachable

		status := http.StatusOK
		if !resp.Ready {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, resp)
	}
}

func pingStore(ctx context.Context, d deps.Deps) error {
	if d.Store == nil {
		return errStoreNotInitialized
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return d.Store.Ping(ctx)
}
