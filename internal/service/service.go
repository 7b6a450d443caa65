package service

import (
	"context"

	"github.com/mediashelf/catalog-service/internal/domain"
	"github.com/mediashelf/catalog-service/internal/recommend"
	"go.uber.org/zap"
)

// Store is the full storage surface the service depends on. The pgx
// repository and the in-memory store both satisfy it.
type Store interface {
	recommend.Store

	CreateUser(ctx context.Context, name string) (*domain.User, error)
	ListUserIDs(ctx context.Context, page, limit int) ([]int64, error)
	CountUsers(ctx context.Context) (int, error)

	CreateWork(ctx context.Context, w *domain.Work) (*domain.Work, error)
	GetWork(ctx context.Context, workID int64) (*domain.Work, error)

	UpsertRating(ctx context.Context, userID, workID int64, score float64) (*domain.Rating, error)
	GetRating(ctx context.Context, userID, workID int64) (*domain.Rating, error)
	ListRatings(ctx context.Context, userID int64) ([]domain.Rating, error)

	CreateShelf(ctx context.Context, userID int64, name string) (*domain.Shelf, error)
	GetShelf(ctx context.Context, shelfID int64) (*domain.Shelf, error)
	ListShelves(ctx context.Context, userID int64) ([]domain.Shelf, error)
	AddShelfWork(ctx context.Context, shelfID, workID int64) error
	RemoveShelfWork(ctx context.Context, shelfID, workID int64) error
	ListShelfWorks(ctx context.Context, shelfID int64) ([]domain.Work, error)

	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	Following(ctx context.Context, userID int64) ([]domain.User, error)
	Followers(ctx context.Context, userID int64) ([]domain.User, error)
}

// WorkCache caches the assembled catalog listing. A nil cache disables
// caching entirely.
type WorkCache interface {
	GetWorks(ctx context.Context) ([]domain.Work, bool, error)
	SetWorks(ctx context.Context, works []domain.Work) error
	Invalidate(ctx context.Context) error
}

type Service struct {
	store  Store
	cache  WorkCache
	engine *recommend.Engine
	logger *zap.Logger
}

func New(store Store, cache WorkCache, logger *zap.Logger) *Service {
	s := &Service{store: store, cache: cache, logger: logger}
	// The engine reads the catalog through the service so it shares the
	// work cache with the listing endpoint.
	s.engine = recommend.NewEngine(&cachedStore{Store: store, svc: s})
	return s
}

// cachedStore routes the engine's catalog reads through the work cache.
type cachedStore struct {
	Store
	svc *Service
}

func (cs *cachedStore) ListWorks(ctx context.Context) ([]domain.Work, error) {
	return cs.svc.ListWorks(ctx)
}

// invalidateCatalog drops the cached catalog. Cache failures are logged
// and never fail the request.
func (s *Service) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
