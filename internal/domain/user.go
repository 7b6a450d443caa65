package domain

import "time"

type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// RecommendationVersion is an opaque change-detection token: bumped by
	// exactly one on every successful rating create-or-update for this user.
	RecommendationVersion int64     `json:"recommendation_version"`
	CreatedAt             time.Time `json:"created_at"`
}
