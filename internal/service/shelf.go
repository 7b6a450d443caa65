package service

import (
	"context"
	"strings"

	"github.com/mediashelf/catalog-service/internal/domain"
)

func (s *Service) CreateShelf(ctx context.Context, userID int64, name string) (*domain.Shelf, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return s.store.CreateShelf(ctx, userID, name)
}

func (s *Service) GetShelf(ctx context.Context, shelfID int64) (*domain.Shelf, []domain.Work, error) {
	shelf, err := s.store.GetShelf(ctx, shelfID)
	if err != nil {
		return nil, nil, err
	}
	works, err := s.store.ListShelfWorks(ctx, shelfID)
	if err != nil {
		return nil, nil, err
	}
	return shelf, works, nil
}

func (s *Service) ListShelves(ctx context.Context, userID int64) ([]domain.Shelf, error) {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.ListShelves(ctx, userID)
}

func (s *Service) AddShelfWork(ctx context.Context, shelfID, workID int64) error {
	if workID < 1 {
		return &domain.ValidationError{Field: "work_id", Reason: "must be a positive integer"}
	}
	return s.store.AddShelfWork(ctx, shelfID, workID)
}

func (s *Service) RemoveShelfWork(ctx context.Context, shelfID, workID int64) error {
	return s.store.RemoveShelfWork(ctx, shelfID, workID)
}
