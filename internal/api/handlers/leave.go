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

type LeaveHandler struct {
	leaveService *service.LeaveService
}

func NewLeaveHandler(leaveService *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

type FileLeaveRequest struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Reason   string `json:"reason"`
}

func (h *LeaveHandler) File(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req FileLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FromDate == "" || req.ToDate == "" || req.Reason == "" {
		respondError(w, http.StatusBadRequest, "fromDate, toDate and reason are required")
		return
	}

	from, _, err := dhakatime.DayRangeFor(req.FromDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, _, err := dhakatime.DayRangeFor(req.ToDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	leave, err := h.leaveService.File(r.Context(), userID, service.FileLeaveInput{
		FromDate: from,
		ToDate:   to,
		Reason:   req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidLeaveRange):
			respondError(w, http.StatusBadRequest, "leave end date is before start date")
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "user not found")
		default:
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, leave)
}

// List returns the caller's own requests; admins may pass ?status= to list
// requests across users awaiting a decision.
func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetCurrentUser(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if status := r.URL.Query().Get("status"); status != "" {
		if !user.Role.IsAdmin() {
			respondError(w, http.StatusForbidden, "insufficient role")
			return
		}
		s := domain.LeaveStatus(status)
		if !s.IsValid() {
			respondError(w, http.StatusBadRequest, "invalid status")
			return
		}
		leaves, err := h.leaveService.ListByStatus(r.Context(), s)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		respondJSON(w, http.StatusOK, leaves)
		return
	}

	leaves, err := h.leaveService.ListMine(r.Context(), user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, leaves)
}

type DecideLeaveRequest struct {
	Approve bool `json:"approve"`
}

func (h *LeaveHandler) Decide(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	leaveID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid leave ID")
		return
	}

	var req DecideLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	leave, err := h.leaveService.Decide(r.Context(), adminID, leaveID, req.Approve)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrLeaveNotFound):
			respondError(w, http.StatusNotFound, "leave request not found")
		case errors.Is(err, domain.ErrLeaveDecided):
			respondError(w, http.StatusConflict, "leave request already decided")
		default:
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, leave)
}
