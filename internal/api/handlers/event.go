package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/boe-dawah/boe-backend/internal/api/middleware"
	"github.com/boe-dawah/boe-backend/internal/dhakatime"
	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	EventDate   string   `json:"eventDate"`
	Audience    []string `json:"audience"`
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.EventDate == "" {
		respondError(w, http.StatusBadRequest, "title and eventDate are required")
		return
	}

	date, _, err := dhakatime.DayRangeFor(req.EventDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	event, err := h.eventService.Create(r.Context(), userID, service.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   date,
		Audience:    req.Audience,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			respondError(w, http.StatusBadRequest, "invalid audience role")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, event)
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetCurrentUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	start, end, err := parseDateRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.eventService.List(r.Context(), user.Role, start, end)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid event ID")
		return
	}

	if err := h.eventService.Delete(r.Context(), eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			respondError(w, http.StatusNotFound, "event not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
