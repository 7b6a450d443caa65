package handler

import "net/http"

// GET /users/{userID}/recommendations
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid userID parameter")
		return
	}

	result, err := h.service.Recommendations(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RecommendationResponse{
		UserID:  userID,
		Current: result.Current,
		Profile: result.Profile,
		Version: result.Version,
	})
}
