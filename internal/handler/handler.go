// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Amuniare/eventease/internal/catalog"
	"github.com/Amuniare/eventease/internal/model"
	"github.com/Amuniare/eventease/internal/service"
	"github.com/Amuniare/eventease/internal/validate"
	"github.com/go-chi/chi/v5"
)

// EventHandler holds all HTTP handlers for the registration API.
type EventHandler struct {
	svc *service.RegistrationService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc *service.RegistrationService) *EventHandler {
	return &EventHandler{svc: svc}
}

// eventResponse adds the derived availability fields to a catalog event.
type eventResponse struct {
	model.Event
	IsAvailable    bool `json:"isAvailable"`
	SpotsRemaining int  `json:"spotsRemaining"`
}

func toEventResponse(e model.Event) eventResponse {
	return eventResponse{
		Event:          e,
		IsAvailable:    e.IsAvailable(),
		SpotsRemaining: e.SpotsRemaining(),
	}
}

// validationErrorResponse carries the per-field messages of a rejected form.
type validationErrorResponse struct {
	Error  string                      `json:"error"`
	Fields validate.RegistrationErrors `json:"fields"`
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// eventID parses the {id} URL parameter. A malformed id is treated the same
// as an unknown one: a recoverable not-found, never a fault.
func eventID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// ListEvents handles GET /events
// Returns a JSON array of all catalog events with availability.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events := h.svc.ListEvents()

	out := make([]eventResponse, len(events))
	for i, e := range events {
		out[i] = toEventResponse(e)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetEvent handles GET /events/{id}
// Returns a single event by its catalog id.
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}

	event, err := h.svc.GetEvent(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get event")
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(event))
}

// Register handles POST /events/{id}/register
// Runs the full registration flow for the specified event.
func (h *EventHandler) Register(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}

	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	conf, err := h.svc.Register(r.Context(), id, req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{
				Error:  "registration input is invalid",
				Fields: verr.Fields,
			})
		case errors.Is(err, catalog.ErrNotFound):
			writeError(w, http.StatusNotFound, "event not found")
		case errors.Is(err, service.ErrAlreadyRegistered):
			writeError(w, http.StatusConflict, "you are already registered for this event")
		case errors.Is(err, service.ErrEventFull):
			writeError(w, http.StatusConflict, "event is fully booked")
		default:
			writeError(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, conf)
}

// MarkAttended handles POST /events/{id}/attend
// Marks the session's registration for the event as attended. An id with no
// registration leaves the list untouched; the current session is returned
// either way.
func (h *EventHandler) MarkAttended(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}

	writeJSON(w, http.StatusOK, h.svc.MarkAttended(r.Context(), id))
}

// Unregister handles DELETE /events/{id}/register
// Removes the session's registration for the event if present.
func (h *EventHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}

	writeJSON(w, http.StatusOK, h.svc.Unregister(r.Context(), id))
}

// GetSession handles GET /session
// Returns the current session state.
func (h *EventHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.SessionSnapshot())
}

// Logout handles DELETE /session
// Resets the session and removes its durable entry.
func (h *EventHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Logout(r.Context()))
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
