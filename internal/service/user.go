package service

import (
	"context"
	"strings"

	"github.com/mediashelf/catalog-service/internal/domain"
)

func (s *Service) CreateUser(ctx context.Context, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return s.store.CreateUser(ctx, name)
}

func (s *Service) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.store.GetUser(ctx, userID)
}
