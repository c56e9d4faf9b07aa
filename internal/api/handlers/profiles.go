package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mood-village/server/internal/api/respond"
	"github.com/mood-village/server/internal/auth"
	"github.com/mood-village/server/internal/domain/profiles"
)

type ProfilesHandler struct {
	Service *profiles.Service
}

func NewProfilesHandler(service *profiles.Service) *ProfilesHandler {
	return &ProfilesHandler{Service: service}
}

func (h *ProfilesHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	result, err := h.Service.Get(r.Context(), identity.UserID)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "failed to load profile", err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

func (h *ProfilesHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	var input profiles.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.Service.Update(r.Context(), identity.UserID, input)
	if err != nil {
		h.writeError(w, r, err, "failed to update profile")
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

func (h *ProfilesHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	var input profiles.SettingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.Service.UpdateSettings(r.Context(), identity.UserID, input)
	if err != nil {
		h.writeError(w, r, err, "failed to update settings")
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

func (h *ProfilesHandler) SetTrustedContact(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	var input profiles.TrustedContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.Service.SetTrustedContact(r.Context(), identity.UserID, input)
	if err != nil {
		h.writeError(w, r, err, "failed to save trusted contact")
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

func (h *ProfilesHandler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var validation profiles.ValidationError
	if errors.As(err, &validation) {
		respond.Error(w, r, http.StatusBadRequest, validation.Error(), err)
		return
	}
	respond.Error(w, r, http.StatusInternalServerError, fallback, err)
}
