package service

import (
	"context"

	"github.com/mediashelf/catalog-service/internal/domain"
)

// UpsertRating validates and stores a user's score for a work. Validation
// happens before any storage call, so a rejected score can never bump the
// user's recommendation version. The store performs the version bump
// atomically with the rating write.
func (s *Service) UpsertRating(ctx context.Context, userID, workID int64, score float64) (*domain.Rating, error) {
	if workID < 1 {
		return nil, &domain.ValidationError{Field: "work_id", Reason: "must be a positive integer"}
	}
	if score < domain.MinScore || score > domain.MaxScore {
		return nil, &domain.ValidationError{Field: "score", Reason: "must be between 1 and 5"}
	}

	rating, err := s.store.UpsertRating(ctx, userID, workID, score)
	if err != nil {
		return nil, err
	}

	// The work's rating aggregates changed.
	s.invalidateCatalog(ctx)
	return rating, nil
}

func (s *Service) GetRating(ctx context.Context, userID, workID int64) (*domain.Rating, error) {
	return s.store.GetRating(ctx, userID, workID)
}

func (s *Service) ListRatings(ctx context.Context, userID int64) ([]domain.Rating, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ListRatings(ctx, userID)
}
