package handlers

import (
	"net/http"

	"github.com/mood-village/server/internal/api/respond"
	"github.com/mood-village/server/internal/domain/moods"
)

type moodsResponse struct {
	Moods []moods.Mood `json:"moods"`
}

// Moods serves the static mood catalog.
func Moods() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, moodsResponse{Moods: moods.Catalog()})
	})
}
