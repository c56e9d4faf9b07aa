package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mood-village/server/internal/api/respond"
	"github.com/mood-village/server/internal/auth"
	"github.com/mood-village/server/internal/domain/checkins"
)

type CheckinsHandler struct {
	Service *checkins.Service
}

func NewCheckinsHandler(service *checkins.Service) *CheckinsHandler {
	return &CheckinsHandler{Service: service}
}

func (h *CheckinsHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	result, err := h.Service.History(r.Context(), identity.UserID)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "failed to load check-ins", err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

func (h *CheckinsHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	var input checkins.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.Service.Create(r.Context(), identity.UserID, input)
	if err != nil {
		var validation checkins.ValidationError
		if errors.As(err, &validation) {
			respond.Error(w, r, http.StatusBadRequest, validation.Error(), err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "failed to save check-in", err)
		return
	}
	respond.JSON(w, http.StatusCreated, result)
}

func (h *CheckinsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	result, err := h.Service.Summarize(r.Context(), identity.UserID)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "failed to load summary", err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}
