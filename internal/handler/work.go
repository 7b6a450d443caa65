package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mediashelf/catalog-service/internal/domain"
)

// POST /works
func (h *Handler) CreateWork(w http.ResponseWriter, r *http.Request) {
	var req createWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Malformed JSON body")
		return
	}

	work, err := h.service.CreateWork(r.Context(), &domain.Work{
		Title:  req.Title,
		Type:   domain.WorkType(req.Type),
		Year:   req.Year,
		Genres: req.Genres,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, work)
}

// GET /works/{workID}
func (h *Handler) GetWork(w http.ResponseWriter, r *http.Request) {
	workID, ok := idParam(r, "workID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid workID parameter")
		return
	}

	work, err := h.service.GetWork(r.Context(), workID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, work)
}

// GET /works
func (h *Handler) ListWorks(w http.ResponseWriter, r *http.Request) {
	works, err := h.service.ListWorks(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, works)
}
