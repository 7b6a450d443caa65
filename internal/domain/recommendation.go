package domain

// RecommendationResult carries the two published lists plus the user's
// recommendation version at read time. Current is popularity-ranked;
// Profile is taste-ranked and falls back to the popularity ranking for
// users with no rating history.
type RecommendationResult struct {
	Current []Work `json:"current"`
	Profile []Work `json:"profile"`
	Version int64  `json:"version"`
}

type BatchStatus string

const (
	StatusSuccess BatchStatus = "success"
	StatusFailed  BatchStatus = "failed"
)

type BatchUserResult struct {
	UserID  int64                 `json:"user_id"`
	Result  *RecommendationResult `json:"result,omitempty"`
	Status  BatchStatus           `json:"status"`
	Error   string                `json:"error,omitempty"`
	Message string                `json:"message,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchMeta struct {
	GeneratedAt string `json:"generated_at"`
}

type BatchResponse struct {
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalUsers int               `json:"total_users"`
	Results    []BatchUserResult `json:"results"`
	Summary    BatchSummary      `json:"summary"`
	Metadata   BatchMeta         `json:"metadata"`
}
