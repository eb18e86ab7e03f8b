package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/repository"
	"github.com/boe-dawah/boe-backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AdminHandler covers the user-management surface.
type AdminHandler struct {
	userService *service.UserService
}

func NewAdminHandler(userService *service.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.UserFilter{
		Markaz:   q.Get("markaz"),
		Division: q.Get("division"),
		District: q.Get("district"),
	}
	if role := q.Get("role"); role != "" {
		if !domain.Role(role).IsValid() {
			respondError(w, http.StatusBadRequest, "invalid role")
			return
		}
		filter.Role = domain.Role(role)
	}

	users, err := h.userService.List(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

type UpdateUserRequest struct {
	Approved *bool   `json:"approved"`
	Role     *string `json:"role"`
}

func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Approved == nil && req.Role == nil {
		respondError(w, http.StatusBadRequest, "nothing to update")
		return
	}

	input := service.UpdateUserInput{Approved: req.Approved}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.Update(r.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, domain.ErrInvalidRole):
			respondError(w, http.StatusBadRequest, "invalid role")
		default:
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, user)
}
