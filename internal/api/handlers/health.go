package handlers

import (
	"net/http"

	"github.com/mood-village/server/internal/api/respond"
	"github.com/mood-village/server/internal/storage"
)

type healthResponse struct {
	Status string `json:"status"`
	Source string `json:"source,omitempty"`
}

// Healthz reports process liveness. It answers as long as the server loop
// is running, regardless of storage health.
func Healthz() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, healthResponse{Status: "ok"})
	})
}

// Readyz reports whether the storage backend is reachable. The in-memory
// backend is always ready; postgres is pinged per request.
func Readyz(store storage.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			respond.Error(w, r, http.StatusServiceUnavailable, "storage unavailable", err)
			return
		}
		respond.JSON(w, http.StatusOK, healthResponse{Status: "ready", Source: store.Source()})
	})
}
