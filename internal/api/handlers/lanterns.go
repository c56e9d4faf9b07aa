package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mood-village/server/internal/api/respond"
	"github.com/mood-village/server/internal/domain/lanterns"
	"github.com/mood-village/server/internal/metrics"
)

type LanternsHandler struct {
	Service *lanterns.Service
}

func NewLanternsHandler(service *lanterns.Service) *LanternsHandler {
	return &LanternsHandler{Service: service}
}

func (h *LanternsHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.List(r.Context())
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "failed to load lanterns", err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

func (h *LanternsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input lanterns.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.Service.Create(r.Context(), input)
	if err != nil {
		var validation lanterns.ValidationError
		if errors.As(err, &validation) {
			respond.Error(w, r, http.StatusBadRequest, validation.Error(), err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "failed to release lantern", err)
		return
	}

	metrics.LanternsReleasedTotal.WithLabelValues(result.Lantern.MoodID).Inc()
	respond.JSON(w, http.StatusCreated, result)
}

func (h *LanternsHandler) ListReplies(w http.ResponseWriter, r *http.Request) {
	lanternID := strings.TrimSpace(r.PathValue("lanternId"))

	result, err := h.Service.Replies(r.Context(), lanternID)
	if err != nil {
		if errors.Is(err, lanterns.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, "lantern not found", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "failed to load replies", err)
		return
	}
	respond.JSON(w, http.StatusOK, result)
}

func (h *LanternsHandler) CreateReply(w http.ResponseWriter, r *http.Request) {
	lanternID := strings.TrimSpace(r.PathValue("lanternId"))

	var input lanterns.ReplyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.Service.Reply(r.Context(), lanternID, input)
	if err != nil {
		var validation lanterns.ValidationError
		switch {
		case errors.Is(err, lanterns.ErrNotFound):
			respond.Error(w, r, http.StatusNotFound, "lantern not found", err)
		case errors.As(err, &validation):
			respond.Error(w, r, http.StatusBadRequest, validation.Error(), err)
		default:
			respond.Error(w, r, http.StatusInternalServerError, "failed to save reply", err)
		}
		return
	}

	respond.JSON(w, http.StatusCreated, result)
}
