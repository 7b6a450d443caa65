package service

import (
	"context"
	"strings"

	"github.com/mediashelf/catalog-service/internal/domain"
	"go.uber.org/zap"
)

func (s *Service) CreateWork(ctx context.Context, w *domain.Work) (*domain.Work, error) {
	if strings.TrimSpace(w.Title) == "" {
		return nil, &domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !w.Type.Valid() {
		return nil, &domain.ValidationError{Field: "type", Reason: "unknown work type"}
	}
	if w.Year < 0 {
		return nil, &domain.ValidationError{Field: "year", Reason: "must not be negative"}
	}

	created, err := s.store.CreateWork(ctx, w)
	if err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return created, nil
}

func (s *Service) GetWork(ctx context.Context, workID int64) (*domain.Work, error) {
	return s.store.GetWork(ctx, workID)
}

// ListWorks returns the catalog with rating aggregates, served from the
// work cache when possible.
func (s *Service) ListWorks(ctx context.Context) ([]domain.Work, error) {
	if s.cache != nil {
		cached, found, err := s.cache.GetWorks(ctx)
		if err != nil {
			s.logger.Warn("catalog cache read failed", zap.Error(err))
		}
		if found {
			return cached, nil
		}
	}

	works, err := s.store.ListWorks(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetWorks(ctx, works); err != nil {
			s.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return works, nil
}
