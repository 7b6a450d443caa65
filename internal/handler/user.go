package handler

import (
	"encoding/json"
	"net/http"
)

// POST /users
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	user, err := h.service.CreateUser(r.Context(), req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// GET /users/{userID}
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid userID parameter")
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
