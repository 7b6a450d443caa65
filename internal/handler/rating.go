package handler

import (
	"encoding/json"
	"net/http"
)

// POST /users/{userID}/ratings
func (h *Handler) RateWork(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid userID parameter")
		return
	}

	var req rateWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	rating, err := h.service.UpsertRating(r.Context(), userID, req.WorkID, req.Score)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rating)
}

// GET /users/{userID}/ratings
func (h *Handler) ListRatings(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid userID parameter")
		return
	}

	ratings, err := h.service.ListRatings(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ratings)
}
