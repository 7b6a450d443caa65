package domain

import "time"

const (
	MinScore = 1.0
	MaxScore = 5.0
)

// Rating is a single user's score for a work. At most one rating exists
// per (user, work) pair; resubmitting replaces the score and refreshes
// RatedAt.
type Rating struct {
	ID      int64     `json:"id"`
	UserID  int64     `json:"user_id"`
	WorkID  int64     `json:"work_id"`
	Score   float64   `json:"score"`
	RatedAt time.Time `json:"rated_at"`
}

// UserRating is a rating joined with the rated work's facets, the read
// model consumed by taste-profile building.
type UserRating struct {
	WorkID   int64     `json:"work_id"`
	Score    float64   `json:"score"`
	WorkType WorkType  `json:"work_type"`
	Genres   []string  `json:"genres"`
	RatedAt  time.Time `json:"rated_at"`
}
