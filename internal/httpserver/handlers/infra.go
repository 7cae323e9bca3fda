package handlers

import (
	"errors"
	"net/http"

	"github.com/ekpss/quizapp/internal/httpserver/deps"
)

var errStoreNotInitialized = errors.New("store not initialized")

type componentStatus struct {
	OK             bool   `json:"ok"`
	SubjectsLoaded *int   `json:"subjects_loaded,omitempty"`
	LastReload     string `json:"last_reload,omitempty"`
	Source         string `json:"source,omitempty"`
	Mode           string `json:"mode,omitempty"`
	Impact         string `json:"impact,omitempty"`
	Error          string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

// Infra reports the state of the content catalog and the bookmark store
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subjects := d.Catalog.Count()
		lastReload := d.Catalog.GetLastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format("2006-01-02 15:04:05")
		}

		components := map[string]componentStatus{
			"content": {
				OK:             subjects > 0,
				SubjectsLoaded: &subjects,
				LastReload:     lastReloadStr,
				Source:         d.ContentFile,
			},
			"store": checkStore(r, d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func overallStatus(components map[string]componentStatus) string {
	// No content = nothing to quiz on
	if content, exists := components["content"]; exists && !content.OK {
		return "critical"
	}

	// Store down = quizzes work, bookmarks don't
	if store, exists := components["store"]; exists && !store.OK {
		return "degraded"
	}

	return "optimal"
}

func checkStore(r *http.Request, d deps.Deps) componentStatus {
	if err := pingStore(r.Context(), d); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   d.StoreKind,
			Impact: "bookmarks-disabled",
			Error:  err.Error(),
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   d.StoreKind,
		Impact: "bookmarks-enabled",
	}
}
