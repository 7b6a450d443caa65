package handler

import "github.com/mediashelf/catalog-service/internal/domain"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type RecommendationResponse struct {
	UserID  int64         `json:"user_id"`
	Current []domain.Work `json:"current"`
	Profile []domain.Work `json:"profile"`
	Version int64         `json:"version"`
}

type ShelfResponse struct {
	domain.Shelf
	Works []domain.Work `json:"works"`
}

type createUserRequest struct {
	Name string `json:"name"`
}

type createWorkRequest struct {
	Title  string   `json:"title"`
	Type   string   `json:"type"`
	Year   int      `json:"year"`
	Genres []string `json:"genres"`
}

type rateWorkRequest struct {
	WorkID int64   `json:"work_id"`
	Score  float64 `json:"score"`
}

type createShelfRequest struct {
	Name string `json:"name"`
}

type shelfWorkRequest struct {
	WorkID int64 `json:"work_id"`
}
