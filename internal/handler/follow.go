package handler

import "net/http"

func (h *Handler) followPair(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	followerID, ok := idParam(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid userID parameter")
		return 0, 0, false
	}
	followeeID, ok := idParam(r, "followeeID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid followeeID parameter")
		return 0, 0, false
	}
	return followerID, followeeID, true
}

// PUT /users/{userID}/following/{followeeID}
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	followerID, followeeID, ok := h.followPair(w, r)
	if !ok {
		return
	}

	if err := h.service.Follow(r.Context(), followerID, followeeID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DELETE /users/{userID}/following/{followeeID}
func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	followerID, followeeID, ok := h.followPair(w, r)
	if !ok {
		return
	}

	if err := h.service.Unfollow(r.Context(), followerID, followeeID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /users/{userID}/following
func (h *Handler) Following(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid userID parameter")
		return
	}

	users, err := h.service.Following(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// GET /users/{userID}/followers
func (h *Handler) Followers(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid userID parameter")
		return
	}

	users, err := h.service.Followers(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
