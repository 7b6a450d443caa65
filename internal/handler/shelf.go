package handler

import (
	"encoding/json"
	"net/http"
)

// POST /users/{userID}/shelves
func (h *Handler) CreateShelf(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid userID parameter")
		return
	}

	var req createShelfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	shelf, err := h.service.CreateShelf(r.Context(), userID, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, shelf)
}

// GET /users/{userID}/shelves
func (h *Handler) ListShelves(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid userID parameter")
		return
	}

	shelves, err := h.service.ListShelves(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shelves)
}

// GET /shelves/{shelfID}
func (h *Handler) GetShelf(w http.ResponseWriter, r *http.Request) {
	shelfID, ok := idParam(r, "shelfID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid shelfID parameter")
		return
	}

	shelf, works, err := h.service.GetShelf(r.Context(), shelfID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ShelfResponse{Shelf: *shelf, Works: works})
}

// POST /shelves/{shelfID}/works
func (h *Handler) AddShelfWork(w http.ResponseWriter, r *http.Request) {
	shelfID, ok := idParam(r, "shelfID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid shelfID parameter")
		return
	}

	var req shelfWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	if err := h.service.AddShelfWork(r.Context(), shelfID, req.WorkID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /shelves/{shelfID}/works/{workID}
func (h *Handler) RemoveShelfWork(w http.ResponseWriter, r *http.Request) {
	shelfID, ok := idParam(r, "shelfID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid shelfID parameter")
		return
	}
	workID, ok := idParam(r, "workID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid workID parameter")
		return
	}

	if err := h.service.RemoveShelfWork(r.Context(), shelfID, workID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
