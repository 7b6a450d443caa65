package service

import (
	"context"

	"github.com/mediashelf/catalog-service/internal/domain"
)

func (s *Service) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return &domain.ValidationError{Field: "followee_id", Reason: "users cannot follow themselves"}
	}
	return s.store.Follow(ctx, followerID, followeeID)
}

func (s *Service) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	return s.store.Unfollow(ctx, followerID, followeeID)
}

func (s *Service) Following(ctx context.Context, userID int64) ([]domain.User, error) {
	return s.store.Following(ctx, userID)
}

func (s *Service) Followers(ctx context.Context, userID int64) ([]domain.User, error) {
	return s.store.Followers(ctx, userID)
}
