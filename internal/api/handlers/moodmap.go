package handlers

import (
	"net/http"

	"github.com/mood-village/server/internal/api/respond"
	"github.com/mood-village/server/internal/domain/moodmap"
)

// MoodMap serves the community mood map fixtures.
func MoodMap() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, moodmap.Current())
	})
}
