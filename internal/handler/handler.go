package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mediashelf/catalog-service/internal/domain"
	"github.com/mediashelf/catalog-service/internal/service"
)

type Handler struct {
	service *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{service: svc}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// respondError maps domain errors to HTTP status codes. NotFound and
// validation failures must stay distinguishable; everything else is an
// internal error.
func respondError(w http.ResponseWriter, err error) {
	var v *domain.ValidationError
	switch {
	case errors.As(err, &v):
		writeError(w, http.StatusBadRequest, "validation_error", v.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "user_not_found", "user does not exist")
	case errors.Is(err, domain.ErrWorkNotFound):
		writeError(w, http.StatusNotFound, "work_not_found", "work does not exist")
	case errors.Is(err, domain.ErrShelfNotFound):
		writeError(w, http.StatusNotFound, "shelf_not_found", "shelf does not exist")
	case errors.Is(err, domain.ErrRatingNotFound):
		writeError(w, http.StatusNotFound, "rating_not_found", "rating does not exist")
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, "request_timeout", "Request timed out, please try again")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}

// idParam parses a positive integer URL parameter.
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
