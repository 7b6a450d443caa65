package recommend

import (
	"context"
	"fmt"

	"github.com/mediashelf/catalog-service/internal/domain"
)

// Store is the slice of the storage layer the engine reads from. Both the
// pgx repository and the in-memory store satisfy it.
type Store interface {
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	ListRatedWorks(ctx context.Context, userID int64) ([]domain.UserRating, error)
	ListWorks(ctx context.Context) ([]domain.Work, error)
	RecommendationVersion(ctx context.Context, userID int64) (int64, error)
}

// Engine computes recommendation lists on demand. It never mutates state:
// rating writes happen elsewhere, and the version counter is only read
// here to tag the result.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Recommendations assembles both published lists for a user. "Current" is
// popularity-ranked; "profile" is ranked against the user's taste profile
// and falls back to the popularity ranking when the profile is empty
// (cold start). Works the user already rated never appear in either list.
func (e *Engine) Recommendations(ctx context.Context, userID int64) (*domain.RecommendationResult, error) {
	if _, err := e.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	history, err := e.store.ListRatedWorks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch rated works for user %d: %w", userID, err)
	}
	profile := BuildProfile(history)

	catalog, err := e.store.ListWorks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	rated := make(map[int64]struct{}, len(history))
	for _, r := range history {
		rated[r.WorkID] = struct{}{}
	}
	candidates := EligibleWorks(catalog, rated)

	current := Rank(candidates, Popularity(), ListSize)

	personalized := current
	if len(profile) > 0 {
		personalized = Rank(candidates, ByProfile(profile), ListSize)
	}

	version, err := e.store.RecommendationVersion(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.RecommendationResult{
		Current: current,
		Profile: personalized,
		Version: version,
	}, nil
}
