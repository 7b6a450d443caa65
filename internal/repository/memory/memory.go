// Package memory provides an in-memory store with the same behavior as the
// pgx repository. It backs tests and local runs without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mediashelf/catalog-service/internal/domain"
)

type Store struct {
	mu sync.RWMutex

	users   map[int64]*domain.User
	works   map[int64]*domain.Work
	ratings map[int64]map[int64]*domain.Rating // userID -> workID -> rating
	shelves map[int64]*domain.Shelf
	members map[int64]map[int64]time.Time // shelfID -> workID -> added at
	follows map[int64]map[int64]struct{}  // followerID -> followee set

	nextUserID   int64
	nextWorkID   int64
	nextRatingID int64
	nextShelfID  int64
}

func New() *Store {
	return &Store{
		users:   map[int64]*domain.User{},
		works:   map[int64]*domain.Work{},
		ratings: map[int64]map[int64]*domain.Rating{},
		shelves: map[int64]*domain.Shelf{},
		members: map[int64]map[int64]time.Time{},
		follows: map[int64]map[int64]struct{}{},
	}
}

func (s *Store) CreateUser(ctx context.Context, name string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	u := &domain.User{ID: s.nextUserID, Name: name, CreatedAt: time.Now()}
	s.users[u.ID] = u
	cp := *u
	return &cp, nil
}

func (s *Store) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) RecommendationVersion(ctx context.Context, userID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	return u.RecommendationVersion, nil
}

func (s *Store) ListUserIDs(ctx context.Context, page, limit int) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	offset := (page - 1) * limit
	if offset >= len(ids) {
		return nil, nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	return ids[offset:end], nil
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

func (s *Store) CreateWork(ctx context.Context, w *domain.Work) (*domain.Work, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextWorkID++
	created := &domain.Work{
		ID:        s.nextWorkID,
		Title:     w.Title,
		Type:      w.Type,
		Year:      w.Year,
		Genres:    append([]string(nil), w.Genres...),
		CreatedAt: time.Now(),
	}
	s.works[created.ID] = created
	cp := *created
	return &cp, nil
}

func (s *Store) GetWork(ctx context.Context, workID int64) (*domain.Work, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.works[workID]
	if !ok {
		return nil, domain.ErrWorkNotFound
	}
	cp := s.withAggregates(*w)
	return &cp, nil
}

func (s *Store) ListWorks(ctx context.Context) ([]domain.Work, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	works := make([]domain.Work, 0, len(s.works))
	for _, w := range s.works {
		works = append(works, s.withAggregates(*w))
	}
	sort.Slice(works, func(i, j int) bool { return works[i].ID < works[j].ID })
	return works, nil
}

// withAggregates fills in the mean score and count across all users'
// ratings for the work. Callers must hold at least the read lock.
func (s *Store) withAggregates(w domain.Work) domain.Work {
	var sum float64
	var count int64
	for _, byWork := range s.ratings {
		if rt, ok := byWork[w.ID]; ok {
			sum += rt.Score
			count++
		}
	}
	if count > 0 {
		w.Rating = sum / float64(count)
	} else {
		w.Rating = 0
	}
	w.RatingCount = count
	return w
}

// UpsertRating mirrors the repository's transactional semantics: the
// rating write and the version bump happen atomically under the lock.
func (s *Store) UpsertRating(ctx context.Context, userID, workID int64, score float64) (*domain.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.works[workID]; !ok {
		return nil, domain.ErrWorkNotFound
	}
	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	byWork := s.ratings[userID]
	if byWork == nil {
		byWork = map[int64]*domain.Rating{}
		s.ratings[userID] = byWork
	}

	rt, ok := byWork[workID]
	if !ok {
		s.nextRatingID++
		rt = &domain.Rating{ID: s.nextRatingID, UserID: userID, WorkID: workID}
		byWork[workID] = rt
	}
	rt.Score = score
	rt.RatedAt = time.Now()

	u.RecommendationVersion++

	cp := *rt
	return &cp, nil
}

func (s *Store) GetRating(ctx context.Context, userID, workID int64) (*domain.Rating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rt, ok := s.ratings[userID][workID]
	if !ok {
		return nil, domain.ErrRatingNotFound
	}
	cp := *rt
	return &cp, nil
}

func (s *Store) ListRatings(ctx context.Context, userID int64) ([]domain.Rating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ratings []domain.Rating
	for _, rt := range s.ratings[userID] {
		ratings = append(ratings, *rt)
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].ID < ratings[j].ID })
	return ratings, nil
}

func (s *Store) ListRatedWorks(ctx context.Context, userID int64) ([]domain.UserRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []domain.UserRating
	for workID, rt := range s.ratings[userID] {
		w, ok := s.works[workID]
		if !ok {
			continue
		}
		items = append(items, domain.UserRating{
			WorkID:   workID,
			Score:    rt.Score,
			WorkType: w.Type,
			Genres:   append([]string(nil), w.Genres...),
			RatedAt:  rt.RatedAt,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].WorkID < items[j].WorkID })
	return items, nil
}

func (s *Store) CreateShelf(ctx context.Context, userID int64, name string) (*domain.Shelf, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return nil, domain.ErrUserNotFound
	}

	s.nextShelfID++
	shelf := &domain.Shelf{ID: s.nextShelfID, UserID: userID, Name: name, CreatedAt: time.Now()}
	s.shelves[shelf.ID] = shelf
	s.members[shelf.ID] = map[int64]time.Time{}
	cp := *shelf
	return &cp, nil
}

func (s *Store) GetShelf(ctx context.Context, shelfID int64) (*domain.Shelf, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shelf, ok := s.shelves[shelfID]
	if !ok {
		return nil, domain.ErrShelfNotFound
	}
	cp := *shelf
	return &cp, nil
}

func (s *Store) ListShelves(ctx context.Context, userID int64) ([]domain.Shelf, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var shelves []domain.Shelf
	for _, shelf := range s.shelves {
		if shelf.UserID == userID {
			shelves = append(shelves, *shelf)
		}
	}
	sort.Slice(shelves, func(i, j int) bool { return shelves[i].ID < shelves[j].ID })
	return shelves, nil
}

func (s *Store) AddShelfWork(ctx context.Context, shelfID, workID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shelves[shelfID]; !ok {
		return domain.ErrShelfNotFound
	}
	if _, ok := s.works[workID]; !ok {
		return domain.ErrWorkNotFound
	}
	if _, ok := s.members[shelfID][workID]; !ok {
		s.members[shelfID][workID] = time.Now()
	}
	return nil
}

func (s *Store) RemoveShelfWork(ctx context.Context, shelfID, workID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.shelves[shelfID]; !ok {
		return domain.ErrShelfNotFound
	}
	delete(s.members[shelfID], workID)
	return nil
}

func (s *Store) ListShelfWorks(ctx context.Context, shelfID int64) ([]domain.Work, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.shelves[shelfID]; !ok {
		return nil, domain.ErrShelfNotFound
	}

	var works []domain.Work
	for workID := range s.members[shelfID] {
		if w, ok := s.works[workID]; ok {
			works = append(works, s.withAggregates(*w))
		}
	}
	sort.Slice(works, func(i, j int) bool { return works[i].ID < works[j].ID })
	return works, nil
}

func (s *Store) Follow(ctx context.Context, followerID, followeeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[followerID]; !ok {
		return domain.ErrUserNotFound
	}
	if _, ok := s.users[followeeID]; !ok {
		return domain.ErrUserNotFound
	}
	if s.follows[followerID] == nil {
		s.follows[followerID] = map[int64]struct{}{}
	}
	s.follows[followerID][followeeID] = struct{}{}
	return nil
}

func (s *Store) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[followerID]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.follows[followerID], followeeID)
	return nil
}

func (s *Store) Following(ctx context.Context, userID int64) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[userID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	var users []domain.User
	for followeeID := range s.follows[userID] {
		if u, ok := s.users[followeeID]; ok {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *Store) Followers(ctx context.Context, userID int64) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[userID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	var users []domain.User
	for followerID, followees := range s.follows {
		if _, ok := followees[userID]; !ok {
			continue
		}
		if u, ok := s.users[followerID]; ok {
			users = append(users, *u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
