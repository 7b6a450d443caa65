package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mediashelf/catalog-service/internal/domain"
	"github.com/mediashelf/catalog-service/internal/repository/memory"
	"github.com/mediashelf/catalog-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*service.Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	return service.New(store, nil, zap.NewNop()), store
}

func createUserAndWork(t *testing.T, svc *service.Service) (*domain.User, *domain.Work) {
	t.Helper()
	ctx := context.Background()
	user, err := svc.CreateUser(ctx, "reader")
	require.NoError(t, err)
	work, err := svc.CreateWork(ctx, &domain.Work{
		Title:  "The Hidden Harbor",
		Type:   domain.WorkTypeBook,
		Year:   1997,
		Genres: []string{"drama"},
	})
	require.NoError(t, err)
	return user, work
}

func TestUpsertRatingBumpsVersionByOne(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	user, work := createUserAndWork(t, svc)

	v0, err := store.RecommendationVersion(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), v0)

	_, err = svc.UpsertRating(ctx, user.ID, work.ID, 4.0)
	require.NoError(t, err)
	v1, err := store.RecommendationVersion(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, v0+1, v1)

	// updating the same pair bumps again
	_, err = svc.UpsertRating(ctx, user.ID, work.ID, 2.0)
	require.NoError(t, err)
	v2, err := store.RecommendationVersion(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, v1+1, v2)
}

func TestInvalidScoreDoesNotBumpVersion(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	user, work := createUserAndWork(t, svc)

	_, err := svc.UpsertRating(ctx, user.ID, work.ID, 6.0)
	assert.True(t, domain.IsValidation(err))

	_, err = svc.UpsertRating(ctx, user.ID, work.ID, 0.5)
	assert.True(t, domain.IsValidation(err))

	version, err := store.RecommendationVersion(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
}

func TestRatingRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	user, work := createUserAndWork(t, svc)

	first, err := svc.UpsertRating(ctx, user.ID, work.ID, 4.5)
	require.NoError(t, err)

	got, err := svc.GetRating(ctx, user.ID, work.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got.Score)

	time.Sleep(2 * time.Millisecond)

	second, err := svc.UpsertRating(ctx, user.ID, work.ID, 2.0)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "resubmission must not duplicate the rating")

	got, err = svc.GetRating(ctx, user.ID, work.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Score)
	assert.True(t, got.RatedAt.After(first.RatedAt), "RatedAt must refresh on every write")
}

func TestConcurrentRatingsLoseNoIncrements(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	user, err := svc.CreateUser(ctx, "reader")
	require.NoError(t, err)

	const n = 25
	workIDs := make([]int64, n)
	for i := range workIDs {
		work, err := svc.CreateWork(ctx, &domain.Work{
			Title:  "Work",
			Type:   domain.WorkTypeMovie,
			Genres: []string{"drama"},
		})
		require.NoError(t, err)
		workIDs[i] = work.ID
	}

	var wg sync.WaitGroup
	for _, workID := range workIDs {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := svc.UpsertRating(ctx, user.ID, id, 3.5)
			assert.NoError(t, err)
		}(workID)
	}
	wg.Wait()

	version, err := store.RecommendationVersion(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), version)
}

func TestRatingUnknownUserOrWork(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	user, work := createUserAndWork(t, svc)

	_, err := svc.UpsertRating(ctx, 999999, work.ID, 3.0)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.UpsertRating(ctx, user.ID, 999999, 3.0)
	assert.ErrorIs(t, err, domain.ErrWorkNotFound)
}

func TestCreateUserRejectsEmptyName(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateUser(context.Background(), "   ")
	assert.True(t, domain.IsValidation(err))
}

func TestCreateWorkValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateWork(ctx, &domain.Work{Title: "", Type: domain.WorkTypeBook})
	assert.True(t, domain.IsValidation(err))

	_, err = svc.CreateWork(ctx, &domain.Work{Title: "x", Type: "podcast"})
	assert.True(t, domain.IsValidation(err))
}

func TestShelfLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	user, work := createUserAndWork(t, svc)

	shelf, err := svc.CreateShelf(ctx, user.ID, "favorites")
	require.NoError(t, err)

	require.NoError(t, svc.AddShelfWork(ctx, shelf.ID, work.ID))
	// adding twice is a no-op
	require.NoError(t, svc.AddShelfWork(ctx, shelf.ID, work.ID))

	_, works, err := svc.GetShelf(ctx, shelf.ID)
	require.NoError(t, err)
	require.Len(t, works, 1)
	assert.Equal(t, work.ID, works[0].ID)

	require.NoError(t, svc.RemoveShelfWork(ctx, shelf.ID, work.ID))
	_, works, err = svc.GetShelf(ctx, shelf.ID)
	require.NoError(t, err)
	assert.Empty(t, works)

	shelves, err := svc.ListShelves(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, shelves, 1)
}

func TestFollowGraph(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	alice, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)
	bob, err := svc.CreateUser(ctx, "bob")
	require.NoError(t, err)

	err = svc.Follow(ctx, alice.ID, alice.ID)
	assert.True(t, domain.IsValidation(err), "self-follow must be rejected")

	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))
	// re-following is a no-op
	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))

	following, err := svc.Following(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, bob.ID, following[0].ID)

	followers, err := svc.Followers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, alice.ID, followers[0].ID)

	require.NoError(t, svc.Unfollow(ctx, alice.ID, bob.ID))
	following, err = svc.Following(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestBatchRecommendations(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"alice", "bob", "carol"} {
		_, err := svc.CreateUser(ctx, name)
		require.NoError(t, err)
	}
	_, err := svc.CreateWork(ctx, &domain.Work{
		Title:  "The Golden Signal",
		Type:   domain.WorkTypeMovie,
		Genres: []string{"sci-fi"},
	})
	require.NoError(t, err)

	result, err := svc.BatchRecommendations(ctx, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalUsers)
	assert.Equal(t, 3, result.Summary.SuccessCount)
	assert.Equal(t, 0, result.Summary.FailedCount)
	require.Len(t, result.Results, 3)
	for _, r := range result.Results {
		assert.Equal(t, domain.StatusSuccess, r.Status)
		require.NotNil(t, r.Result)
		assert.Len(t, r.Result.Current, 1)
	}
}

func TestRecommendationsReflectNewRatings(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	user, work := createUserAndWork(t, svc)

	before, err := svc.Recommendations(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), before.Version)
	assert.Len(t, before.Current, 1)

	_, err = svc.UpsertRating(ctx, user.ID, work.ID, 5.0)
	require.NoError(t, err)

	after, err := svc.Recommendations(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), after.Version)
	assert.Empty(t, after.Current, "the only work is now rated and must disappear")
	assert.Empty(t, after.Profile)
}
