package domain

import "time"

type WorkType string

const (
	WorkTypeMovie  WorkType = "movie"
	WorkTypeSeries WorkType = "series"
	WorkTypeBook   WorkType = "book"
	WorkTypeMusic  WorkType = "music"
	WorkTypeGame   WorkType = "game"
)

// Valid reports whether t is one of the known work types.
func (t WorkType) Valid() bool {
	switch t {
	case WorkTypeMovie, WorkTypeSeries, WorkTypeBook, WorkTypeMusic, WorkTypeGame:
		return true
	}
	return false
}

type Work struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Type        WorkType  `json:"type"`
	Year        int       `json:"year,omitempty"`
	Genres      []string  `json:"genres"`
	Rating      float64   `json:"rating"`
	RatingCount int64     `json:"rating_count"`
	CreatedAt   time.Time `json:"created_at"`
}
