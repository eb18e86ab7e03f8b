package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/boe-dawah/boe-backend/internal/api/middleware"
	"github.com/boe-dawah/boe-backend/internal/dhakatime"
	"github.com/boe-dawah/boe-backend/internal/domain"
	"github.com/boe-dawah/boe-backend/internal/repository"
	"github.com/boe-dawah/boe-backend/internal/service"
)

// ReportHandler serves one report kind; the nine kinds share this
// implementation and differ only in the record type.
type ReportHandler[T domain.Report] struct {
	svc *service.ReportService[T]
}

func NewReportHandler[T domain.Report](svc *service.ReportService[T]) *ReportHandler[T] {
	return &ReportHandler[T]{svc: svc}
}

func (h *ReportHandler[T]) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var rec T
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Submit(r.Context(), userID, &rec)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyReport):
			respondError(w, http.StatusBadRequest, "report contains no data")
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, domain.ErrAlreadySubmitted):
			respondError(w, http.StatusConflict, "already submitted today")
		default:
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// List answers both the mode=today probe and the from/to range listing.
func (h *ReportHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if r.URL.Query().Get("mode") == "today" {
		submitted, err := h.svc.SubmittedToday(r.Context(), userID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"submitted": submitted})
		return
	}

	start, end, err := parseDateRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	recs, err := h.svc.ListMine(r.Context(), userID, start, end)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

func (h *ReportHandler[T]) UpdateToday(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var rec T
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateToday(r.Context(), userID, &rec)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyReport):
			respondError(w, http.StatusBadRequest, "report contains no data")
		case errors.Is(err, domain.ErrReportNotFound):
			respondError(w, http.StatusNotFound, "no report submitted today")
		default:
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *ReportHandler[T]) AdminList(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReportFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	recs, err := h.svc.AdminList(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, recs)
}

func (h *ReportHandler[T]) Summary(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReportFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.svc.Summarize(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// parseDateRange reads optional from/to query parameters as inclusive Dhaka
// calendar dates and returns the corresponding UTC instant bounds. Zero
// times mean unbounded.
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	var start, end time.Time

	if from := r.URL.Query().Get("from"); from != "" {
		s, _, err := dhakatime.DayRangeFor(from)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = s
	}
	if to := r.URL.Query().Get("to"); to != "" {
		_, e, err := dhakatime.DayRangeFor(to)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = e
	}
	return start, end, nil
}

func parseReportFilter(r *http.Request) (repository.ReportFilter, error) {
	start, end, err := parseDateRange(r)
	if err != nil {
		return repository.ReportFilter{}, err
	}
	return repository.ReportFilter{
		Division: r.URL.Query().Get("division"),
		District: r.URL.Query().Get("district"),
		From:     start,
		To:       end,
	}, nil
}
