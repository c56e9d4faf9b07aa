package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mood-village/server/internal/api/respond"
	"github.com/mood-village/server/internal/auth"
	"github.com/mood-village/server/internal/domain/events"
	"github.com/mood-village/server/internal/metrics"
)

type EventsHandler struct {
	Service *events.Service
}

func NewEventsHandler(service *events.Service) *EventsHandler {
	return &EventsHandler{Service: service}
}

type eventListResponse struct {
	events.ListResult
	UserID string `json:"userId"`
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	result, err := h.Service.List(r.Context(), identity.UserID)
	if err != nil {
		respond.Error(w, r, http.StatusInternalServerError, "failed to load events", err)
		return
	}

	respond.JSON(w, http.StatusOK, eventListResponse{ListResult: result, UserID: identity.UserID})
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())

	var input events.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.Service.Create(r.Context(), identity.UserID, input)
	if err != nil {
		var validation events.ValidationError
		if errors.As(err, &validation) {
			respond.Error(w, r, http.StatusBadRequest, validation.Error(), err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "failed to create event", err)
		return
	}

	respond.JSON(w, http.StatusCreated, result)
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())
	eventID := strings.TrimSpace(r.PathValue("eventId"))

	var input events.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.Service.Update(r.Context(), identity.UserID, eventID, input)
	if err != nil {
		h.writeMutationError(w, r, err, "failed to update event")
		return
	}

	respond.JSON(w, http.StatusOK, result)
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())
	eventID := strings.TrimSpace(r.PathValue("eventId"))

	result, err := h.Service.Delete(r.Context(), identity.UserID, eventID)
	if err != nil {
		h.writeMutationError(w, r, err, "failed to delete event")
		return
	}

	respond.JSON(w, http.StatusOK, result)
}

type rsvpRequest struct {
	Status string `json:"status"`
}

func (h *EventsHandler) SetRSVP(w http.ResponseWriter, r *http.Request) {
	identity := auth.FromContext(r.Context())
	eventID := strings.TrimSpace(r.PathValue("eventId"))

	var input rsvpRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	status, ok := events.ParseStatus(input.Status)
	if !ok {
		respond.Error(w, r, http.StatusBadRequest, "status must be yes, maybe, or no", nil)
		return
	}

	result, err := h.Service.SetRSVP(r.Context(), identity.UserID, eventID, status)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			respond.Error(w, r, http.StatusNotFound, "event not found", err)
			return
		}
		respond.Error(w, r, http.StatusInternalServerError, "failed to save RSVP", err)
		return
	}

	metrics.RSVPUpdatesTotal.WithLabelValues(string(status)).Inc()
	respond.JSON(w, http.StatusOK, result)
}

func (h *EventsHandler) writeMutationError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var validation events.ValidationError
	switch {
	case errors.Is(err, events.ErrNotFound):
		respond.Error(w, r, http.StatusNotFound, "event not found", err)
	case errors.Is(err, events.ErrForbidden):
		respond.Error(w, r, http.StatusForbidden, "only the host can modify this event", err)
	case errors.As(err, &validation):
		respond.Error(w, r, http.StatusBadRequest, validation.Error(), err)
	default:
		respond.Error(w, r, http.StatusInternalServerError, fallback, err)
	}
}
